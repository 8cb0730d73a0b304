package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"travelog/internal/models/db_models"
	"travelog/pkg/utils"
)

type FutureTripFilter struct {
	Status    string
	SessionID string
}

type FutureRepository interface {
	ListTrips(ctx context.Context, filter FutureTripFilter) ([]db_models.FutureTrip, error)
	GetTripByID(ctx context.Context, tripID string) (*db_models.FutureTrip, error)
	GetTripWithDetails(ctx context.Context, tripID string) (*db_models.FutureTrip, error)
	CreateTrip(ctx context.Context, trip *db_models.FutureTrip) error
	SaveTrip(ctx context.Context, trip *db_models.FutureTrip) error
	DeleteTrip(ctx context.Context, tripID string) error

	ListItineraries(ctx context.Context, tripID string) ([]db_models.FutureItinerary, error)
	GetItineraryByID(ctx context.Context, itineraryID string) (*db_models.FutureItinerary, error)
	CreateItinerary(ctx context.Context, itinerary *db_models.FutureItinerary) error
	SaveItinerary(ctx context.Context, itinerary *db_models.FutureItinerary) error
	DeleteItinerary(ctx context.Context, itineraryID string) error

	ListActivities(ctx context.Context, itineraryID string) ([]db_models.FutureActivity, error)
	GetActivityByID(ctx context.Context, activityID string) (*db_models.FutureActivity, error)
	CreateActivity(ctx context.Context, activity *db_models.FutureActivity) error
	SaveActivity(ctx context.Context, activity *db_models.FutureActivity) error
	DeleteActivity(ctx context.Context, activityID string) error
}

type futureRepository struct {
	db *gorm.DB
}

func NewFutureRepository(db *gorm.DB) FutureRepository {
	return &futureRepository{db: db}
}

func (r *futureRepository) ListTrips(ctx context.Context, filter FutureTripFilter) ([]db_models.FutureTrip, error) {
	query := r.db.WithContext(ctx).Order("start_date asc")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.SessionID != "" {
		query = query.Where("session_id = ?", filter.SessionID)
	}

	var trips []db_models.FutureTrip
	if err := query.Find(&trips).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}
	return trips, nil
}

func (r *futureRepository) GetTripByID(ctx context.Context, tripID string) (*db_models.FutureTrip, error) {
	var trip db_models.FutureTrip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripID).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrFutureTripNotFound
		}
		return nil, utils.ErrDatabaseError
	}
	return &trip, nil
}

func (r *futureRepository) GetTripWithDetails(ctx context.Context, tripID string) (*db_models.FutureTrip, error) {
	var trip db_models.FutureTrip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripID).
		Preload("Itineraries", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_date asc")
		}).
		Preload("Itineraries.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time asc")
		}).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrFutureTripNotFound
		}
		return nil, utils.ErrDatabaseError
	}
	return &trip, nil
}

func (r *futureRepository) CreateTrip(ctx context.Context, trip *db_models.FutureTrip) error {
	if err := r.db.WithContext(ctx).Create(trip).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *futureRepository) SaveTrip(ctx context.Context, trip *db_models.FutureTrip) error {
	if err := r.db.WithContext(ctx).Save(trip).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *futureRepository) DeleteTrip(ctx context.Context, tripID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", tripID).
		Delete(&db_models.FutureTrip{})
	if result.Error != nil {
		return utils.ErrDatabaseError
	}
	if result.RowsAffected == 0 {
		return utils.ErrFutureTripNotFound
	}
	return nil
}

func (r *futureRepository) ListItineraries(ctx context.Context, tripID string) ([]db_models.FutureItinerary, error) {
	var itineraries []db_models.FutureItinerary
	if err := r.db.WithContext(ctx).
		Where("future_trip_id = ?", tripID).
		Order("start_date asc").
		Find(&itineraries).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}
	return itineraries, nil
}

func (r *futureRepository) GetItineraryByID(ctx context.Context, itineraryID string) (*db_models.FutureItinerary, error) {
	var itinerary db_models.FutureItinerary
	err := r.db.WithContext(ctx).
		Where("id = ?", itineraryID).
		First(&itinerary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrItineraryNotFound
		}
		return nil, utils.ErrDatabaseError
	}
	return &itinerary, nil
}

func (r *futureRepository) CreateItinerary(ctx context.Context, itinerary *db_models.FutureItinerary) error {
	if err := r.db.WithContext(ctx).Create(itinerary).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *futureRepository) SaveItinerary(ctx context.Context, itinerary *db_models.FutureItinerary) error {
	if err := r.db.WithContext(ctx).Save(itinerary).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *futureRepository) DeleteItinerary(ctx context.Context, itineraryID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", itineraryID).
		Delete(&db_models.FutureItinerary{})
	if result.Error != nil {
		return utils.ErrDatabaseError
	}
	if result.RowsAffected == 0 {
		return utils.ErrItineraryNotFound
	}
	return nil
}

func (r *futureRepository) ListActivities(ctx context.Context, itineraryID string) ([]db_models.FutureActivity, error) {
	var activities []db_models.FutureActivity
	if err := r.db.WithContext(ctx).
		Where("future_itinerary_id = ?", itineraryID).
		Order("start_time asc").
		Find(&activities).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}
	return activities, nil
}

func (r *futureRepository) GetActivityByID(ctx context.Context, activityID string) (*db_models.FutureActivity, error) {
	var activity db_models.FutureActivity
	err := r.db.WithContext(ctx).
		Where("id = ?", activityID).
		First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrActivityNotFound
		}
		return nil, utils.ErrDatabaseError
	}
	return &activity, nil
}

func (r *futureRepository) CreateActivity(ctx context.Context, activity *db_models.FutureActivity) error {
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *futureRepository) SaveActivity(ctx context.Context, activity *db_models.FutureActivity) error {
	if err := r.db.WithContext(ctx).Save(activity).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *futureRepository) DeleteActivity(ctx context.Context, activityID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", activityID).
		Delete(&db_models.FutureActivity{})
	if result.Error != nil {
		return utils.ErrDatabaseError
	}
	if result.RowsAffected == 0 {
		return utils.ErrActivityNotFound
	}
	return nil
}
