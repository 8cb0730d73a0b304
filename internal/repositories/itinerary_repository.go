package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"travelog/internal/models/db_models"
	"travelog/pkg/utils"
)

type ItineraryRepository interface {
	ListByTrip(ctx context.Context, tripID string) ([]db_models.Itinerary, error)
	GetByID(ctx context.Context, itineraryID string) (*db_models.Itinerary, error)
	Create(ctx context.Context, itinerary *db_models.Itinerary) error
	Save(ctx context.Context, itinerary *db_models.Itinerary) error
	Delete(ctx context.Context, itineraryID string) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) ListByTrip(ctx context.Context, tripID string) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	if err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("start_date asc").
		Find(&itineraries).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}
	return itineraries, nil
}

func (r *itineraryRepository) GetByID(ctx context.Context, itineraryID string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
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

func (r *itineraryRepository) Create(ctx context.Context, itinerary *db_models.Itinerary) error {
	if err := r.db.WithContext(ctx).Create(itinerary).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *itineraryRepository) Save(ctx context.Context, itinerary *db_models.Itinerary) error {
	if err := r.db.WithContext(ctx).Save(itinerary).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *itineraryRepository) Delete(ctx context.Context, itineraryID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", itineraryID).
		Delete(&db_models.Itinerary{})
	if result.Error != nil {
		return utils.ErrDatabaseError
	}
	if result.RowsAffected == 0 {
		return utils.ErrItineraryNotFound
	}
	return nil
}
