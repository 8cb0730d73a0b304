package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"travelog/internal/models/db_models"
	"travelog/pkg/utils"
)

type TripRepository interface {
	ListTrips(ctx context.Context) ([]db_models.Trip, error)
	GetTripByID(ctx context.Context, tripID string) (*db_models.Trip, error)
	GetTripWithDetails(ctx context.Context, tripID string) (*db_models.Trip, error)
	CreateTrip(ctx context.Context, trip *db_models.Trip) error
	SaveTrip(ctx context.Context, trip *db_models.Trip) error
	DeleteTrip(ctx context.Context, tripID string) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) ListTrips(ctx context.Context) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	if err := r.db.WithContext(ctx).
		Order("start_date asc").
		Find(&trips).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}
	return trips, nil
}

func (r *tripRepository) GetTripByID(ctx context.Context, tripID string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripID).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrTripNotFound
		}
		return nil, utils.ErrDatabaseError
	}
	return &trip, nil
}

// GetTripWithDetails nests itineraries ordered by start date and, inside each,
// activities ordered by start time. One preloaded query path, not N+1.
func (r *tripRepository) GetTripWithDetails(ctx context.Context, tripID string) (*db_models.Trip, error) {
	var trip db_models.Trip
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
			return nil, utils.ErrTripNotFound
		}
		return nil, utils.ErrDatabaseError
	}
	return &trip, nil
}

func (r *tripRepository) CreateTrip(ctx context.Context, trip *db_models.Trip) error {
	if err := r.db.WithContext(ctx).Create(trip).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *tripRepository) SaveTrip(ctx context.Context, trip *db_models.Trip) error {
	if err := r.db.WithContext(ctx).Save(trip).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *tripRepository) DeleteTrip(ctx context.Context, tripID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", tripID).
		Delete(&db_models.Trip{})
	if result.Error != nil {
		return utils.ErrDatabaseError
	}
	if result.RowsAffected == 0 {
		return utils.ErrTripNotFound
	}
	return nil
}
