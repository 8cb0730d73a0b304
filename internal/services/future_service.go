package services

import (
	"context"

	"travelog/internal/models/db_models"
	"travelog/internal/models/request_models"
	"travelog/internal/repositories"
	"travelog/pkg/utils"
)

type FutureServiceInterface interface {
	ListTrips(ctx context.Context, status, sessionID string) ([]db_models.FutureTrip, error)
	GetTripDetails(ctx context.Context, tripID string) (*db_models.FutureTrip, error)
	CreateTrip(ctx context.Context, req request_models.FutureTripRequest) (*db_models.FutureTrip, error)
	UpdateTrip(ctx context.Context, tripID string, req request_models.FutureTripRequest) (*db_models.FutureTrip, error)
	DeleteTrip(ctx context.Context, tripID string) error

	ListItineraries(ctx context.Context, tripID string) ([]db_models.FutureItinerary, error)
	CreateItinerary(ctx context.Context, tripID string, req request_models.FutureItineraryRequest) (*db_models.FutureItinerary, error)
	UpdateItinerary(ctx context.Context, itineraryID string, req request_models.FutureItineraryRequest) (*db_models.FutureItinerary, error)
	DeleteItinerary(ctx context.Context, itineraryID string) error

	ListActivities(ctx context.Context, itineraryID string) ([]db_models.FutureActivity, error)
	CreateActivity(ctx context.Context, itineraryID string, req request_models.FutureActivityRequest) (*db_models.FutureActivity, error)
	UpdateActivity(ctx context.Context, activityID string, req request_models.FutureActivityRequest) (*db_models.FutureActivity, error)
	DeleteActivity(ctx context.Context, activityID string) error
}

type FutureService struct {
	futureRepo repositories.FutureRepository
}

func NewFutureService(futureRepo repositories.FutureRepository) FutureServiceInterface {
	return &FutureService{futureRepo: futureRepo}
}

func (s *FutureService) ListTrips(ctx context.Context, status, sessionID string) ([]db_models.FutureTrip, error) {
	return s.futureRepo.ListTrips(ctx, repositories.FutureTripFilter{
		Status:    status,
		SessionID: sessionID,
	})
}

func (s *FutureService) GetTripDetails(ctx context.Context, tripID string) (*db_models.FutureTrip, error) {
	return s.futureRepo.GetTripWithDetails(ctx, tripID)
}

func validateFutureTripRequest(req request_models.FutureTripRequest) error {
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

func (s *FutureService) CreateTrip(ctx context.Context, req request_models.FutureTripRequest) (*db_models.FutureTrip, error) {
	if err := validateFutureTripRequest(req); err != nil {
		return nil, err
	}

	trip := db_models.FutureTrip{
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		SessionID:   req.SessionID,
		Status:      db_models.FutureTripPlanned,
	}
	if err := s.futureRepo.CreateTrip(ctx, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// UpdateTrip rejects any edit of a migrated planning row before looking at the
// payload; the planificado -> migrado transition is one-way.
func (s *FutureService) UpdateTrip(ctx context.Context, tripID string, req request_models.FutureTripRequest) (*db_models.FutureTrip, error) {
	trip, err := s.futureRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status == db_models.FutureTripMigrated {
		return nil, utils.ErrFutureTripMigrated
	}

	if err := validateFutureTripRequest(req); err != nil {
		return nil, err
	}

	trip.Name = req.Name
	trip.Destination = req.Destination
	trip.StartDate = req.StartDate
	trip.EndDate = req.EndDate
	trip.Description = req.Description
	if req.SessionID != "" {
		trip.SessionID = req.SessionID
	}

	if err := s.futureRepo.SaveTrip(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *FutureService) DeleteTrip(ctx context.Context, tripID string) error {
	return s.futureRepo.DeleteTrip(ctx, tripID)
}

func (s *FutureService) ListItineraries(ctx context.Context, tripID string) ([]db_models.FutureItinerary, error) {
	if _, err := s.futureRepo.GetTripByID(ctx, tripID); err != nil {
		return nil, err
	}
	return s.futureRepo.ListItineraries(ctx, tripID)
}

func validateFutureItineraryRequest(req request_models.FutureItineraryRequest) error {
	if req.StartDate == "" {
		return utils.MissingField("fecha_inicio")
	}
	if req.EndDate == "" {
		return utils.MissingField("fecha_fin")
	}
	return nil
}

func (s *FutureService) CreateItinerary(ctx context.Context, tripID string, req request_models.FutureItineraryRequest) (*db_models.FutureItinerary, error) {
	if err := validateFutureItineraryRequest(req); err != nil {
		return nil, err
	}

	trip, err := s.futureRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	duration := req.DurationDays
	if duration == 0 {
		duration = utils.DaysBetween(req.StartDate, req.EndDate)
	}

	itinerary := db_models.FutureItinerary{
		FutureTripID:      trip.ID,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		DurationDays:      duration,
		DailyDestinations: req.DailyDestinations,
		Description:       req.Description,
		TravelType:        db_models.TravelType(req.TravelType),
	}
	if err := s.futureRepo.CreateItinerary(ctx, &itinerary); err != nil {
		return nil, err
	}
	return &itinerary, nil
}

func (s *FutureService) UpdateItinerary(ctx context.Context, itineraryID string, req request_models.FutureItineraryRequest) (*db_models.FutureItinerary, error) {
	if err := validateFutureItineraryRequest(req); err != nil {
		return nil, err
	}

	itinerary, err := s.futureRepo.GetItineraryByID(ctx, itineraryID)
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

	if err := s.futureRepo.SaveItinerary(ctx, itinerary); err != nil {
		return nil, err
	}
	return itinerary, nil
}

func (s *FutureService) DeleteItinerary(ctx context.Context, itineraryID string) error {
	return s.futureRepo.DeleteItinerary(ctx, itineraryID)
}

func (s *FutureService) ListActivities(ctx context.Context, itineraryID string) ([]db_models.FutureActivity, error) {
	if _, err := s.futureRepo.GetItineraryByID(ctx, itineraryID); err != nil {
		return nil, err
	}
	return s.futureRepo.ListActivities(ctx, itineraryID)
}

func validateFutureActivityRequest(req request_models.FutureActivityRequest) error {
	if req.Name == "" {
		return utils.MissingField("nombre")
	}
	if req.StartTime == "" {
		return utils.MissingField("hora_inicio")
	}
	return nil
}

func (s *FutureService) CreateActivity(ctx context.Context, itineraryID string, req request_models.FutureActivityRequest) (*db_models.FutureActivity, error) {
	if err := validateFutureActivityRequest(req); err != nil {
		return nil, err
	}

	itinerary, err := s.futureRepo.GetItineraryByID(ctx, itineraryID)
	if err != nil {
		return nil, err
	}

	activity := db_models.FutureActivity{
		FutureItineraryID:   itinerary.ID,
		FutureTripID:        itinerary.FutureTripID,
		Name:                req.Name,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		PlannedLocation:     req.PlannedLocation,
		Description:         req.Description,
		AvailableActivityID: req.AvailableActivityID,
		ActivityTypeID:      req.ActivityTypeID,
	}
	if err := s.futureRepo.CreateActivity(ctx, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (s *FutureService) UpdateActivity(ctx context.Context, activityID string, req request_models.FutureActivityRequest) (*db_models.FutureActivity, error) {
	if err := validateFutureActivityRequest(req); err != nil {
		return nil, err
	}

	activity, err := s.futureRepo.GetActivityByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	activity.Name = req.Name
	activity.StartTime = req.StartTime
	activity.EndTime = req.EndTime
	activity.PlannedLocation = req.PlannedLocation
	activity.Description = req.Description
	activity.AvailableActivityID = req.AvailableActivityID
	activity.ActivityTypeID = req.ActivityTypeID

	if err := s.futureRepo.SaveActivity(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *FutureService) DeleteActivity(ctx context.Context, activityID string) error {
	return s.futureRepo.DeleteActivity(ctx, activityID)
}
