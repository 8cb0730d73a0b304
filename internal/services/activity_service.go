package services

import (
	"context"

	"travelog/internal/models/db_models"
	"travelog/internal/models/request_models"
	"travelog/internal/repositories"
	"travelog/pkg/utils"
)

type ActivityServiceInterface interface {
	ListByItinerary(ctx context.Context, itineraryID string) ([]db_models.Activity, error)
	Create(ctx context.Context, itineraryID string, req request_models.ActivityRequest) (*db_models.Activity, error)
	Update(ctx context.Context, activityID string, req request_models.ActivityRequest) (*db_models.Activity, error)
	Delete(ctx context.Context, activityID string) error
}

type ActivityService struct {
	activityRepo  repositories.ActivityRepository
	itineraryRepo repositories.ItineraryRepository
}

func NewActivityService(
	activityRepo repositories.ActivityRepository,
	itineraryRepo repositories.ItineraryRepository,
) ActivityServiceInterface {
	return &ActivityService{
		activityRepo:  activityRepo,
		itineraryRepo: itineraryRepo,
	}
}

func (s *ActivityService) ListByItinerary(ctx context.Context, itineraryID string) ([]db_models.Activity, error) {
	if _, err := s.itineraryRepo.GetByID(ctx, itineraryID); err != nil {
		return nil, err
	}
	return s.activityRepo.ListByItinerary(ctx, itineraryID)
}

func validateActivityRequest(req request_models.ActivityRequest) error {
	if req.Name == "" {
		return utils.MissingField("nombre")
	}
	if req.StartTime == "" {
		return utils.MissingField("hora_inicio")
	}
	return nil
}

func (s *ActivityService) Create(ctx context.Context, itineraryID string, req request_models.ActivityRequest) (*db_models.Activity, error) {
	if err := validateActivityRequest(req); err != nil {
		return nil, err
	}

	itinerary, err := s.itineraryRepo.GetByID(ctx, itineraryID)
	if err != nil {
		return nil, err
	}

	// The time window is stored as supplied; it is not validated against the
	// itinerary's date range.
	activity := db_models.Activity{
		ItineraryID:         itinerary.ID,
		TripID:              itinerary.TripID,
		Name:                req.Name,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		Description:         req.Description,
		AvailableActivityID: req.AvailableActivityID,
		ActivityTypeID:      req.ActivityTypeID,
		DistanceKM:          req.DistanceKM,
		DurationMin:         req.DurationMin,
		AvgSpeedKMH:         req.AvgSpeedKMH,
		Calories:            req.Calories,
		StepCount:           req.StepCount,
		PointCount:          req.PointCount,
		TransportProfile:    req.TransportProfile,
		TrackPath:           req.TrackPath,
		MapPath:             req.MapPath,
		ManifestPath:        req.ManifestPath,
	}
	if err := s.activityRepo.Create(ctx, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (s *ActivityService) Update(ctx context.Context, activityID string, req request_models.ActivityRequest) (*db_models.Activity, error) {
	if err := validateActivityRequest(req); err != nil {
		return nil, err
	}

	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	activity.Name = req.Name
	activity.StartTime = req.StartTime
	activity.EndTime = req.EndTime
	activity.Description = req.Description
	activity.AvailableActivityID = req.AvailableActivityID
	activity.ActivityTypeID = req.ActivityTypeID
	activity.DistanceKM = req.DistanceKM
	activity.DurationMin = req.DurationMin
	activity.AvgSpeedKMH = req.AvgSpeedKMH
	activity.Calories = req.Calories
	activity.StepCount = req.StepCount
	activity.PointCount = req.PointCount
	activity.TransportProfile = req.TransportProfile
	activity.TrackPath = req.TrackPath
	activity.MapPath = req.MapPath
	activity.ManifestPath = req.ManifestPath

	if err := s.activityRepo.Save(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) Delete(ctx context.Context, activityID string) error {
	return s.activityRepo.Delete(ctx, activityID)
}
