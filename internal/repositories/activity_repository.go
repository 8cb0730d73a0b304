package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"travelog/internal/models/db_models"
	"travelog/pkg/utils"
)

type ActivityRepository interface {
	ListByItinerary(ctx context.Context, itineraryID string) ([]db_models.Activity, error)
	GetByID(ctx context.Context, activityID string) (*db_models.Activity, error)
	Create(ctx context.Context, activity *db_models.Activity) error
	Save(ctx context.Context, activity *db_models.Activity) error
	Delete(ctx context.Context, activityID string) error
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) ListByItinerary(ctx context.Context, itineraryID string) ([]db_models.Activity, error) {
	var activities []db_models.Activity
	if err := r.db.WithContext(ctx).
		Where("itinerary_id = ?", itineraryID).
		Order("start_time asc").
		Find(&activities).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}
	return activities, nil
}

func (r *activityRepository) GetByID(ctx context.Context, activityID string) (*db_models.Activity, error) {
	var activity db_models.Activity
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

func (r *activityRepository) Create(ctx context.Context, activity *db_models.Activity) error {
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *activityRepository) Save(ctx context.Context, activity *db_models.Activity) error {
	if err := r.db.WithContext(ctx).Save(activity).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *activityRepository) Delete(ctx context.Context, activityID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", activityID).
		Delete(&db_models.Activity{})
	if result.Error != nil {
		return utils.ErrDatabaseError
	}
	if result.RowsAffected == 0 {
		return utils.ErrActivityNotFound
	}
	return nil
}
