package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"travelog/internal/models/db_models"
	"travelog/pkg/utils"
)

func seedFutureTrip(t *testing.T, db *gorm.DB, itineraries, activitiesPerItinerary int) *db_models.FutureTrip {
	t.Helper()

	trip := db_models.FutureTrip{
		Name:      "Norte de Portugal",
		StartDate: "2026-04-10",
		EndDate:   "2026-04-16",
		SessionID: "sesion-plan-1",
	}
	require.NoError(t, db.Create(&trip).Error)

	for i := 0; i < itineraries; i++ {
		itinerary := db_models.FutureItinerary{
			FutureTripID: trip.ID,
			StartDate:    fmt.Sprintf("2026-04-1%d", i),
			EndDate:      fmt.Sprintf("2026-04-1%d", i+2),
			TravelType:   db_models.TravelTypeRural,
		}
		require.NoError(t, db.Create(&itinerary).Error)

		for j := 0; j < activitiesPerItinerary; j++ {
			activity := db_models.FutureActivity{
				FutureItineraryID: itinerary.ID,
				FutureTripID:      trip.ID,
				Name:              fmt.Sprintf("Actividad %d-%d", i, j),
				StartTime:         fmt.Sprintf("%02d:00", 8+j),
				PlannedLocation:   "Oporto",
			}
			require.NoError(t, db.Create(&activity).Error)
		}
	}

	return &trip
}

func TestPromoteTripCopiesFullTree(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMigrationRepository(db)
	ctx := context.Background()

	trip := seedFutureTrip(t, db, 2, 3)

	outcome, err := repo.PromoteTrip(ctx, trip.ID.String(), false)
	require.NoError(t, err)

	assert.Equal(t, 2, outcome.ItinerariesMigrated)
	assert.Equal(t, 6, outcome.ActivitiesMigrated)
	assert.Empty(t, outcome.Errors)

	var realTrip db_models.Trip
	require.NoError(t, db.First(&realTrip, "id = ?", outcome.RealTripID).Error)
	assert.Equal(t, trip.Name, realTrip.Name)
	assert.Equal(t, trip.StartDate, realTrip.StartDate)

	var realItineraries int64
	require.NoError(t, db.Model(&db_models.Itinerary{}).
		Where("trip_id = ?", outcome.RealTripID).Count(&realItineraries).Error)
	assert.EqualValues(t, 2, realItineraries)

	var realActivities int64
	require.NoError(t, db.Model(&db_models.Activity{}).
		Where("trip_id = ?", outcome.RealTripID).Count(&realActivities).Error)
	assert.EqualValues(t, 6, realActivities)

	// The planning row is frozen and points at its real counterpart.
	var reloaded db_models.FutureTrip
	require.NoError(t, db.First(&reloaded, "id = ?", trip.ID).Error)
	assert.Equal(t, db_models.FutureTripMigrated, reloaded.Status)
	require.NotNil(t, reloaded.RealTripID)
	assert.Equal(t, outcome.RealTripID, *reloaded.RealTripID)

	var unlinked int64
	require.NoError(t, db.Model(&db_models.FutureItinerary{}).
		Where("future_trip_id = ? AND real_itinerary_id IS NULL", trip.ID).Count(&unlinked).Error)
	assert.Zero(t, unlinked, "every future itinerary should carry its real id")

	require.NoError(t, db.Model(&db_models.FutureActivity{}).
		Where("future_trip_id = ? AND real_activity_id IS NULL", trip.ID).Count(&unlinked).Error)
	assert.Zero(t, unlinked, "every future activity should carry its real id")
}

func TestPromoteTripAlreadyMigrated(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMigrationRepository(db)
	ctx := context.Background()

	trip := seedFutureTrip(t, db, 1, 1)

	_, err := repo.PromoteTrip(ctx, trip.ID.String(), false)
	require.NoError(t, err)

	_, err = repo.PromoteTrip(ctx, trip.ID.String(), false)
	assert.ErrorIs(t, err, utils.ErrFutureTripMigrated)
}

func TestPromoteTripNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMigrationRepository(db)

	_, err := repo.PromoteTrip(context.Background(), "3f1a2e34-0000-0000-0000-000000000000", false)
	assert.ErrorIs(t, err, utils.ErrFutureTripNotFound)
}

func TestPromoteTripAtomic(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMigrationRepository(db)
	ctx := context.Background()

	trip := seedFutureTrip(t, db, 2, 2)

	outcome, err := repo.PromoteTrip(ctx, trip.ID.String(), true)
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.ItinerariesMigrated)
	assert.Equal(t, 4, outcome.ActivitiesMigrated)

	var reloaded db_models.FutureTrip
	require.NoError(t, db.First(&reloaded, "id = ?", trip.ID).Error)
	assert.Equal(t, db_models.FutureTripMigrated, reloaded.Status)
}

func TestPromoteTripAtomicRollsBackWholly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMigrationRepository(db)
	ctx := context.Background()

	trip := seedFutureTrip(t, db, 2, 1)

	// Poison the activity inserts so the promotion fails mid-tree.
	require.NoError(t, db.Migrator().DropTable(&db_models.Activity{}))

	_, err := repo.PromoteTrip(ctx, trip.ID.String(), true)
	require.Error(t, err)

	var reloaded db_models.FutureTrip
	require.NoError(t, db.First(&reloaded, "id = ?", trip.ID).Error)
	assert.Equal(t, db_models.FutureTripPlanned, reloaded.Status)
	assert.Nil(t, reloaded.RealTripID)

	var realTrips int64
	require.NoError(t, db.Model(&db_models.Trip{}).Count(&realTrips).Error)
	assert.Zero(t, realTrips, "the rolled-back trip must not survive")

	var realItineraries int64
	require.NoError(t, db.Model(&db_models.Itinerary{}).Count(&realItineraries).Error)
	assert.Zero(t, realItineraries)
}

func TestPromoteTripBestEffortRecordsFailures(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMigrationRepository(db)
	ctx := context.Background()

	trip := seedFutureTrip(t, db, 2, 1)

	require.NoError(t, db.Migrator().DropTable(&db_models.Activity{}))

	outcome, err := repo.PromoteTrip(ctx, trip.ID.String(), false)
	require.NoError(t, err, "best-effort mode reports failures instead of aborting")

	assert.Equal(t, 2, outcome.ItinerariesMigrated)
	assert.Equal(t, 0, outcome.ActivitiesMigrated)
	assert.Len(t, outcome.Errors, 2)

	var reloaded db_models.FutureTrip
	require.NoError(t, db.First(&reloaded, "id = ?", trip.ID).Error)
	assert.Equal(t, db_models.FutureTripMigrated, reloaded.Status)
}

func TestMigrationLogRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMigrationRepository(db)
	ctx := context.Background()

	trip := seedFutureTrip(t, db, 1, 0)
	outcome, err := repo.PromoteTrip(ctx, trip.ID.String(), false)
	require.NoError(t, err)

	entry := db_models.MigrationLog{
		FutureTripID:        trip.ID,
		RealTripID:          &outcome.RealTripID,
		ItinerariesMigrated: outcome.ItinerariesMigrated,
		ActivitiesMigrated:  outcome.ActivitiesMigrated,
	}
	require.NoError(t, repo.CreateLog(ctx, &entry))

	logs, err := repo.ListLogs(ctx, trip.ID.String())
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 1, logs[0].ItinerariesMigrated)
	assert.Equal(t, 0, logs[0].ActivitiesMigrated)
}
