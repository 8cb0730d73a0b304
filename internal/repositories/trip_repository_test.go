package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelog/internal/models/db_models"
	"travelog/pkg/utils"
)

func TestGetTripWithDetailsOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTripRepository(db)
	ctx := context.Background()

	trip := db_models.Trip{Name: "Andalucía", StartDate: "2025-05-01", EndDate: "2025-05-06"}
	require.NoError(t, repo.CreateTrip(ctx, &trip))

	// Inserted out of order on purpose.
	late := db_models.Itinerary{TripID: trip.ID, StartDate: "2025-05-04", EndDate: "2025-05-06"}
	early := db_models.Itinerary{TripID: trip.ID, StartDate: "2025-05-01", EndDate: "2025-05-03"}
	require.NoError(t, db.Create(&late).Error)
	require.NoError(t, db.Create(&early).Error)

	evening := db_models.Activity{ItineraryID: early.ID, TripID: trip.ID, Name: "Cena", StartTime: "21:00"}
	morning := db_models.Activity{ItineraryID: early.ID, TripID: trip.ID, Name: "Alhambra", StartTime: "09:00"}
	require.NoError(t, db.Create(&evening).Error)
	require.NoError(t, db.Create(&morning).Error)

	got, err := repo.GetTripWithDetails(ctx, trip.ID.String())
	require.NoError(t, err)

	require.Len(t, got.Itineraries, 2)
	assert.Equal(t, "2025-05-01", got.Itineraries[0].StartDate)
	assert.Equal(t, "2025-05-04", got.Itineraries[1].StartDate)

	require.Len(t, got.Itineraries[0].Activities, 2)
	assert.Equal(t, "Alhambra", got.Itineraries[0].Activities[0].Name)
	assert.Equal(t, "Cena", got.Itineraries[0].Activities[1].Name)
}

func TestDeleteTripCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTripRepository(db)
	ctx := context.Background()

	trip := db_models.Trip{Name: "Pirineos", StartDate: "2025-08-01", EndDate: "2025-08-05"}
	require.NoError(t, repo.CreateTrip(ctx, &trip))

	itinerary := db_models.Itinerary{TripID: trip.ID, StartDate: "2025-08-01", EndDate: "2025-08-05"}
	require.NoError(t, db.Create(&itinerary).Error)

	activity := db_models.Activity{ItineraryID: itinerary.ID, TripID: trip.ID, Name: "Ascenso", StartTime: "07:00"}
	require.NoError(t, db.Create(&activity).Error)

	require.NoError(t, repo.DeleteTrip(ctx, trip.ID.String()))

	var itineraries, activities int64
	require.NoError(t, db.Model(&db_models.Itinerary{}).Where("trip_id = ?", trip.ID).Count(&itineraries).Error)
	require.NoError(t, db.Model(&db_models.Activity{}).Where("trip_id = ?", trip.ID).Count(&activities).Error)
	assert.Zero(t, itineraries, "itineraries should cascade with their trip")
	assert.Zero(t, activities, "activities should cascade transitively")
}

func TestDeleteTripNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTripRepository(db)

	err := repo.DeleteTrip(context.Background(), "3f1a2e34-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestGetTripByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTripRepository(db)

	_, err := repo.GetTripByID(context.Background(), "3f1a2e34-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}
