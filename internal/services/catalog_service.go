package services

import (
	"context"

	"travelog/internal/models/db_models"
	"travelog/internal/models/request_models"
	"travelog/internal/repositories"
	"travelog/pkg/utils"
)

type CatalogServiceInterface interface {
	ListActivityTypes(ctx context.Context) ([]db_models.ActivityType, error)
	ListAvailableActivities(ctx context.Context, activityTypeID string) ([]db_models.AvailableActivity, error)
	CreateActivityType(ctx context.Context, req request_models.CatalogEntryRequest) (*db_models.ActivityType, error)
	CreateAvailableActivity(ctx context.Context, req request_models.CatalogEntryRequest) (*db_models.AvailableActivity, error)
}

type CatalogService struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogService(catalogRepo repositories.CatalogRepository) CatalogServiceInterface {
	return &CatalogService{catalogRepo: catalogRepo}
}

func (s *CatalogService) ListActivityTypes(ctx context.Context) ([]db_models.ActivityType, error) {
	return s.catalogRepo.ListActivityTypes(ctx)
}

func (s *CatalogService) ListAvailableActivities(ctx context.Context, activityTypeID string) ([]db_models.AvailableActivity, error) {
	return s.catalogRepo.ListAvailableActivities(ctx, activityTypeID)
}

func (s *CatalogService) CreateActivityType(ctx context.Context, req request_models.CatalogEntryRequest) (*db_models.ActivityType, error) {
	if req.Name == "" {
		return nil, utils.MissingField("nombre")
	}

	entry := db_models.ActivityType{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.catalogRepo.CreateActivityType(ctx, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *CatalogService) CreateAvailableActivity(ctx context.Context, req request_models.CatalogEntryRequest) (*db_models.AvailableActivity, error) {
	if req.Name == "" {
		return nil, utils.MissingField("nombre")
	}

	entry := db_models.AvailableActivity{
		Name:           req.Name,
		Description:    req.Description,
		ActivityTypeID: req.ActivityTypeID,
	}
	if err := s.catalogRepo.CreateAvailableActivity(ctx, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
