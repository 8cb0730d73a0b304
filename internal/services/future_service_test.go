package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelog/internal/models/db_models"
	"travelog/internal/models/request_models"
	"travelog/internal/repositories"
	"travelog/pkg/utils"
)

func TestCreateFutureTripDefaultsToPlanned(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFutureService(repositories.NewFutureRepository(db))

	trip, err := svc.CreateTrip(context.Background(), request_models.FutureTripRequest{
		Name:      "Laponia",
		StartDate: "2026-12-10",
		EndDate:   "2026-12-17",
		SessionID: "s1",
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.FutureTripPlanned, trip.Status)
	assert.Nil(t, trip.RealTripID)
}

func TestCreateFutureTripValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFutureService(repositories.NewFutureRepository(db))
	ctx := context.Background()

	var validationErr *utils.ValidationError

	_, err := svc.CreateTrip(ctx, request_models.FutureTripRequest{StartDate: "2026-12-10", EndDate: "2026-12-17"})
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "nombre")

	_, err = svc.CreateTrip(ctx, request_models.FutureTripRequest{Name: "Laponia", StartDate: "2026-12-10"})
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "fecha_fin")
}

func TestUpdateMigratedTripIsRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFutureService(repositories.NewFutureRepository(db))
	ctx := context.Background()

	trip, err := svc.CreateTrip(ctx, request_models.FutureTripRequest{
		Name: "Laponia", StartDate: "2026-12-10", EndDate: "2026-12-17",
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&db_models.FutureTrip{}).
		Where("id = ?", trip.ID).
		Update("status", db_models.FutureTripMigrated).Error)

	// The frozen-state check runs before payload validation, so even an
	// invalid payload gets the migrated error.
	_, err = svc.UpdateTrip(ctx, trip.ID.String(), request_models.FutureTripRequest{})
	assert.ErrorIs(t, err, utils.ErrFutureTripMigrated)
}

func TestCreateFutureItineraryDerivesDuration(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFutureService(repositories.NewFutureRepository(db))
	ctx := context.Background()

	trip, err := svc.CreateTrip(ctx, request_models.FutureTripRequest{
		Name: "Laponia", StartDate: "2026-12-10", EndDate: "2026-12-17",
	})
	require.NoError(t, err)

	itinerary, err := svc.CreateItinerary(ctx, trip.ID.String(), request_models.FutureItineraryRequest{
		StartDate:  "2026-12-10",
		EndDate:    "2026-12-12",
		TravelType: "naturaleza",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, itinerary.DurationDays)
}
