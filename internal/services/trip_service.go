package services

import (
	"context"

	"travelog/internal/models/db_models"
	"travelog/internal/models/request_models"
	"travelog/internal/repositories"
	"travelog/pkg/utils"
)

type TripServiceInterface interface {
	ListTrips(ctx context.Context) ([]db_models.Trip, error)
	GetTripDetails(ctx context.Context, tripID string) (*db_models.Trip, error)
	CreateTrip(ctx context.Context, req request_models.TripRequest) (*db_models.Trip, error)
	UpdateTrip(ctx context.Context, tripID string, req request_models.TripRequest) (*db_models.Trip, error)
	DeleteTrip(ctx context.Context, tripID string) error
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

func (s *TripService) ListTrips(ctx context.Context) ([]db_models.Trip, error) {
	return s.tripRepo.ListTrips(ctx)
}

func (s *TripService) GetTripDetails(ctx context.Context, tripID string) (*db_models.Trip, error) {
	return s.tripRepo.GetTripWithDetails(ctx, tripID)
}

func validateTripRequest(req request_models.TripRequest) error {
	if req.Name == "" {
		return utils.MissingField("nombre")
	}
	if req.StartDate == "" {
		return utils.MissingField("fecha_inicio")
	}
	if req.EndDate == "" {
		return utils.MissingField("fecha_fin")
	}
	return nil
}

func (s *TripService) CreateTrip(ctx context.Context, req request_models.TripRequest) (*db_models.Trip, error) {
	if err := validateTripRequest(req); err != nil {
		return nil, err
	}

	trip := db_models.Trip{
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		ImagePath:   req.ImagePath,
		AudioPath:   req.AudioPath,
		Description: req.Description,
	}
	if err := s.tripRepo.CreateTrip(ctx, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// UpdateTrip is a full replace of the mutable fields; partial patches are not
// supported anywhere in this API.
func (s *TripService) UpdateTrip(ctx context.Context, tripID string, req request_models.TripRequest) (*db_models.Trip, error) {
	if err := validateTripRequest(req); err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	trip.Name = req.Name
	trip.Destination = req.Destination
	trip.StartDate = req.StartDate
	trip.EndDate = req.EndDate
	trip.ImagePath = req.ImagePath
	trip.AudioPath = req.AudioPath
	trip.Description = req.Description

	if err := s.tripRepo.SaveTrip(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, tripID string) error {
	return s.tripRepo.DeleteTrip(ctx, tripID)
}
