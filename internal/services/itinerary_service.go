package services

import (
	"context"

	"travelog/internal/models/db_models"
	"travelog/internal/models/request_models"
	"travelog/internal/repositories"
	"travelog/pkg/utils"
)

type ItineraryServiceInterface interface {
	ListByTrip(ctx context.Context, tripID string) ([]db_models.Itinerary, error)
	Create(ctx context.Context, tripID string, req request_models.ItineraryRequest) (*db_models.Itinerary, error)
	Update(ctx context.Context, itineraryID string, req request_models.ItineraryRequest) (*db_models.Itinerary, error)
	Delete(ctx context.Context, itineraryID string) error
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	tripRepo      repositories.TripRepository
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	tripRepo repositories.TripRepository,
) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		tripRepo:      tripRepo,
	}
}

func (s *ItineraryService) ListByTrip(ctx context.Context, tripID string) ([]db_models.Itinerary, error) {
	if _, err := s.tripRepo.GetTripByID(ctx, tripID); err != nil {
		return nil, err
	}
	return s.itineraryRepo.ListByTrip(ctx, tripID)
}

func validateItineraryRequest(req request_models.ItineraryRequest) error {
	if req.StartDate == "" {
		return utils.MissingField("fecha_inicio")
	}
	if req.EndDate == "" {
		return utils.MissingField("fecha_fin")
	}
	return nil
}

func (s *ItineraryService) Create(ctx context.Context, tripID string, req request_models.ItineraryRequest) (*db_models.Itinerary, error) {
	if err := validateItineraryRequest(req); err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	duration := req.DurationDays
	if duration == 0 {
		duration = utils.DaysBetween(req.StartDate, req.EndDate)
	}

	itinerary := db_models.Itinerary{
		TripID:            trip.ID,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		DurationDays:      duration,
		DailyDestinations: req.DailyDestinations,
		Description:       req.Description,
		TravelType:        db_models.TravelType(req.TravelType),
	}
	if err := s.itineraryRepo.Create(ctx, &itinerary); err != nil {
		return nil, err
	}
	return &itinerary, nil
}

func (s *ItineraryService) Update(ctx context.Context, itineraryID string, req request_models.ItineraryRequest) (*db_models.Itinerary, error) {
	if err := validateItineraryRequest(req); err != nil {
		return nil, err
	}

	itinerary, err := s.itineraryRepo.GetByID(ctx, itineraryID)
	if err != nil {
		return nil, err
	}

	itinerary.StartDate = req.StartDate
	itinerary.EndDate = req.EndDate
	itinerary.DurationDays = req.DurationDays
	if itinerary.DurationDays == 0 {
		itinerary.DurationDays = utils.DaysBetween(req.StartDate, req.EndDate)
	}
	itinerary.DailyDestinations = req.DailyDestinations
	itinerary.Description = req.Description
	itinerary.TravelType = db_models.TravelType(req.TravelType)

	if err := s.itineraryRepo.Save(ctx, itinerary); err != nil {
		return nil, err
	}
	return itinerary, nil
}

func (s *ItineraryService) Delete(ctx context.Context, itineraryID string) error {
	return s.itineraryRepo.Delete(ctx, itineraryID)
}
