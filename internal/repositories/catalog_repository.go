package repositories

import (
	"context"

	"gorm.io/gorm"

	"travelog/internal/models/db_models"
	"travelog/pkg/utils"
)

type CatalogRepository interface {
	ListActivityTypes(ctx context.Context) ([]db_models.ActivityType, error)
	ListAvailableActivities(ctx context.Context, activityTypeID string) ([]db_models.AvailableActivity, error)
	CreateActivityType(ctx context.Context, entry *db_models.ActivityType) error
	CreateAvailableActivity(ctx context.Context, entry *db_models.AvailableActivity) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListActivityTypes(ctx context.Context) ([]db_models.ActivityType, error) {
	var types []db_models.ActivityType
	if err := r.db.WithContext(ctx).
		Order("name asc").
		Find(&types).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}
	return types, nil
}

func (r *catalogRepository) ListAvailableActivities(ctx context.Context, activityTypeID string) ([]db_models.AvailableActivity, error) {
	query := r.db.WithContext(ctx).Order("name asc")
	if activityTypeID != "" {
		query = query.Where("activity_type_id = ?", activityTypeID)
	}

	var entries []db_models.AvailableActivity
	if err := query.Find(&entries).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entries, nil
}

func (r *catalogRepository) CreateActivityType(ctx context.Context, entry *db_models.ActivityType) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *catalogRepository) CreateAvailableActivity(ctx context.Context, entry *db_models.AvailableActivity) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
