package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelog/internal/infra"
	"travelog/internal/models/db_models"
	"travelog/pkg/utils"
)

// MigrationOutcome summarizes one planned->real promotion.
type MigrationOutcome struct {
	RealTripID          uuid.UUID
	ItinerariesMigrated int
	ActivitiesMigrated  int
	Errors              []string
}

// MigrationRepository owns the only multi-table write sequence in the system.
type MigrationRepository interface {
	PromoteTrip(ctx context.Context, futureTripID string, atomic bool) (*MigrationOutcome, error)
	CreateLog(ctx context.Context, entry *db_models.MigrationLog) error
	ListLogs(ctx context.Context, futureTripID string) ([]db_models.MigrationLog, error)
}

type migrationRepository struct {
	db *gorm.DB
}

func NewMigrationRepository(db *gorm.DB) MigrationRepository {
	return &migrationRepository{db: db}
}

// PromoteTrip creates the real trip, then one real itinerary per future
// itinerary and one real activity per future activity, writing the real id
// back onto every future row and flipping the trip to migrado.
//
// Default mode is best-effort: a failed child is recorded in the outcome and
// its siblings proceed. With atomic set, the whole promotion runs in one
// transaction and any failure rolls everything back.
func (r *migrationRepository) PromoteTrip(ctx context.Context, futureTripID string, atomic bool) (*MigrationOutcome, error) {
	var futureTrip db_models.FutureTrip
	err := r.db.WithContext(ctx).
		Where("id = ?", futureTripID).
		Preload("Itineraries", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_date asc")
		}).
		Preload("Itineraries.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time asc")
		}).
		First(&futureTrip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrFutureTripNotFound
		}
		return nil, utils.ErrDatabaseError
	}

	if futureTrip.Status == db_models.FutureTripMigrated {
		return nil, utils.ErrFutureTripMigrated
	}

	if !atomic {
		return r.promote(r.db.WithContext(ctx), &futureTrip, false)
	}

	tx := infra.StartTransaction(r.db.WithContext(ctx))
	if tx.Error != nil {
		return nil, utils.ErrDatabaseError
	}
	outcome, err := r.promote(tx, &futureTrip, true)
	infra.ReleaseTransaction(tx, err)
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

func (r *migrationRepository) promote(db *gorm.DB, futureTrip *db_models.FutureTrip, failFast bool) (*MigrationOutcome, error) {
	outcome := &MigrationOutcome{}

	realTrip := db_models.Trip{
		Name:        futureTrip.Name,
		Destination: futureTrip.Destination,
		StartDate:   futureTrip.StartDate,
		EndDate:     futureTrip.EndDate,
		Description: futureTrip.Description,
	}
	if err := db.Create(&realTrip).Error; err != nil {
		// Without a real trip nothing below can be anchored; this failure
		// aborts in both modes.
		return nil, utils.ErrDatabaseError
	}
	outcome.RealTripID = realTrip.ID

	for i := range futureTrip.Itineraries {
		futureItinerary := &futureTrip.Itineraries[i]

		realItinerary := db_models.Itinerary{
			TripID:            realTrip.ID,
			StartDate:         futureItinerary.StartDate,
			EndDate:           futureItinerary.EndDate,
			DurationDays:      futureItinerary.DurationDays,
			DailyDestinations: futureItinerary.DailyDestinations,
			Description:       futureItinerary.Description,
			TravelType:        futureItinerary.TravelType,
		}
		if err := db.Create(&realItinerary).Error; err != nil {
			if failFast {
				return nil, utils.ErrDatabaseError
			}
			outcome.Errors = append(outcome.Errors,
				fmt.Sprintf("itinerario %s: %v", futureItinerary.ID, err))
			continue
		}

		futureItinerary.RealItineraryID = &realItinerary.ID
		if err := db.Save(futureItinerary).Error; err != nil {
			if failFast {
				return nil, utils.ErrDatabaseError
			}
			outcome.Errors = append(outcome.Errors,
				fmt.Sprintf("itinerario %s (back-reference): %v", futureItinerary.ID, err))
		}
		outcome.ItinerariesMigrated++

		for j := range futureItinerary.Activities {
			futureActivity := &futureItinerary.Activities[j]

			realActivity := db_models.Activity{
				ItineraryID:         realItinerary.ID,
				TripID:              realTrip.ID,
				Name:                futureActivity.Name,
				StartTime:           futureActivity.StartTime,
				EndTime:             futureActivity.EndTime,
				Description:         futureActivity.Description,
				AvailableActivityID: futureActivity.AvailableActivityID,
				ActivityTypeID:      futureActivity.ActivityTypeID,
			}
			if err := db.Create(&realActivity).Error; err != nil {
				if failFast {
					return nil, utils.ErrDatabaseError
				}
				outcome.Errors = append(outcome.Errors,
					fmt.Sprintf("actividad %s: %v", futureActivity.ID, err))
				continue
			}

			futureActivity.RealActivityID = &realActivity.ID
			if err := db.Save(futureActivity).Error; err != nil {
				if failFast {
					return nil, utils.ErrDatabaseError
				}
				outcome.Errors = append(outcome.Errors,
					fmt.Sprintf("actividad %s (back-reference): %v", futureActivity.ID, err))
			}
			outcome.ActivitiesMigrated++
		}
	}

	futureTrip.Status = db_models.FutureTripMigrated
	futureTrip.RealTripID = &realTrip.ID
	if err := db.Model(&db_models.FutureTrip{}).
		Where("id = ?", futureTrip.ID).
		Updates(map[string]interface{}{
			"status":       db_models.FutureTripMigrated,
			"real_trip_id": realTrip.ID,
		}).Error; err != nil {
		if failFast {
			return nil, utils.ErrDatabaseError
		}
		outcome.Errors = append(outcome.Errors,
			fmt.Sprintf("viaje futuro %s (estado): %v", futureTrip.ID, err))
	}

	return outcome, nil
}

func (r *migrationRepository) CreateLog(ctx context.Context, entry *db_models.MigrationLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *migrationRepository) ListLogs(ctx context.Context, futureTripID string) ([]db_models.MigrationLog, error) {
	var logs []db_models.MigrationLog
	if err := r.db.WithContext(ctx).
		Where("future_trip_id = ?", futureTripID).
		Order("created_at desc").
		Find(&logs).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}
	return logs, nil
}
