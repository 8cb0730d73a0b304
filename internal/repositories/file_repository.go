package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"travelog/internal/models/db_models"
	"travelog/pkg/utils"
)

type FileRepository interface {
	ListFiles(ctx context.Context, activityID string, unassigned bool) ([]db_models.File, error)
	GetByID(ctx context.Context, fileID string) (*db_models.File, error)
	Create(ctx context.Context, file *db_models.File) error
	Save(ctx context.Context, file *db_models.File) error
	Delete(ctx context.Context, fileID string) error
	CreateAssociated(ctx context.Context, associated *db_models.AssociatedFile) error
	DeleteAssociated(ctx context.Context, associatedID string) error
}

type fileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

// ListFiles filters by owning activity when activityID is set, or returns only
// orphan uploads when unassigned is true. Both empty lists everything.
func (r *fileRepository) ListFiles(ctx context.Context, activityID string, unassigned bool) ([]db_models.File, error) {
	query := r.db.WithContext(ctx).Order("created_at asc")
	if activityID != "" {
		query = query.Where("activity_id = ?", activityID)
	} else if unassigned {
		query = query.Where("activity_id IS NULL")
	}

	var files []db_models.File
	if err := query.Find(&files).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}
	return files, nil
}

func (r *fileRepository) GetByID(ctx context.Context, fileID string) (*db_models.File, error) {
	var file db_models.File
	err := r.db.WithContext(ctx).
		Where("id = ?", fileID).
		Preload("Associated").
		First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrFileNotFound
		}
		return nil, utils.ErrDatabaseError
	}
	return &file, nil
}

func (r *fileRepository) Create(ctx context.Context, file *db_models.File) error {
	if err := r.db.WithContext(ctx).Create(file).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *fileRepository) Save(ctx context.Context, file *db_models.File) error {
	if err := r.db.WithContext(ctx).Save(file).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *fileRepository) Delete(ctx context.Context, fileID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", fileID).
		Delete(&db_models.File{})
	if result.Error != nil {
		return utils.ErrDatabaseError
	}
	if result.RowsAffected == 0 {
		return utils.ErrFileNotFound
	}
	return nil
}

func (r *fileRepository) CreateAssociated(ctx context.Context, associated *db_models.AssociatedFile) error {
	if err := r.db.WithContext(ctx).Create(associated).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *fileRepository) DeleteAssociated(ctx context.Context, associatedID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", associatedID).
		Delete(&db_models.AssociatedFile{})
	if result.Error != nil {
		return utils.ErrDatabaseError
	}
	if result.RowsAffected == 0 {
		return utils.ErrFileNotFound
	}
	return nil
}
