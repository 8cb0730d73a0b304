package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"travelog/internal/models/db_models"
	"travelog/internal/repositories"
	"travelog/pkg/utils"
)

func seedPlannedTrip(t *testing.T, db *gorm.DB) *db_models.FutureTrip {
	t.Helper()

	trip := db_models.FutureTrip{
		Name:      "Semana en Asturias",
		StartDate: "2026-06-01",
		EndDate:   "2026-06-07",
	}
	require.NoError(t, db.Create(&trip).Error)

	itinerary := db_models.FutureItinerary{
		FutureTripID: trip.ID,
		StartDate:    "2026-06-01",
		EndDate:      "2026-06-03",
		TravelType:   db_models.TravelTypeNature,
	}
	require.NoError(t, db.Create(&itinerary).Error)

	activity := db_models.FutureActivity{
		FutureItineraryID: itinerary.ID,
		FutureTripID:      trip.ID,
		Name:              "Ruta del Cares",
		StartTime:         "08:00",
	}
	require.NoError(t, db.Create(&activity).Error)

	return &trip
}

func TestMigrateTripWritesAuditLog(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewMigrationRepository(db)
	svc := NewMigrationService(repo, &utils.Config{MigrationAtomic: false})
	ctx := context.Background()

	trip := seedPlannedTrip(t, db)

	result, err := svc.MigrateTrip(ctx, trip.ID.String())
	require.NoError(t, err)

	assert.Equal(t, trip.ID, result.FutureTripID)
	assert.Equal(t, 1, result.ItinerariesMigrated)
	assert.Equal(t, 1, result.ActivitiesMigrated)
	assert.Empty(t, result.Errors)

	logs, err := svc.ListLogs(ctx, trip.ID.String())
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 1, logs[0].ItinerariesMigrated)
	assert.Equal(t, 1, logs[0].ActivitiesMigrated)
	require.NotNil(t, logs[0].RealTripID)
	assert.Equal(t, result.RealTripID, *logs[0].RealTripID)
	assert.Empty(t, logs[0].ErrorDetail)
}

func TestMigrateTripBadID(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewMigrationRepository(db)
	svc := NewMigrationService(repo, &utils.Config{})

	_, err := svc.MigrateTrip(context.Background(), "no-es-un-uuid")
	assert.ErrorIs(t, err, utils.ErrFutureTripNotFound)
}

func TestMigrateTripTwice(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewMigrationRepository(db)
	svc := NewMigrationService(repo, &utils.Config{})
	ctx := context.Background()

	trip := seedPlannedTrip(t, db)

	_, err := svc.MigrateTrip(ctx, trip.ID.String())
	require.NoError(t, err)

	_, err = svc.MigrateTrip(ctx, trip.ID.String())
	assert.ErrorIs(t, err, utils.ErrFutureTripMigrated)

	// The failed second run leaves no extra audit row.
	logs, err := svc.ListLogs(ctx, trip.ID.String())
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}
