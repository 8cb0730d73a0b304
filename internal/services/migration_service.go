package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"travelog/internal/models/db_models"
	"travelog/internal/models/response_models"
	"travelog/internal/repositories"
	"travelog/pkg/utils"
)

type MigrationServiceInterface interface {
	MigrateTrip(ctx context.Context, futureTripID string) (*response_models.MigrationResult, error)
	ListLogs(ctx context.Context, futureTripID string) ([]db_models.MigrationLog, error)
}

type MigrationService struct {
	migrationRepo repositories.MigrationRepository
	cfg           *utils.Config
}

func NewMigrationService(
	migrationRepo repositories.MigrationRepository,
	cfg *utils.Config,
) MigrationServiceInterface {
	return &MigrationService{
		migrationRepo: migrationRepo,
		cfg:           cfg,
	}
}

// MigrateTrip promotes a planned trip into the real schema and records the
// outcome in the audit log. In the default best-effort mode per-item failures
// land in the log row instead of aborting the run.
func (s *MigrationService) MigrateTrip(ctx context.Context, futureTripID string) (*response_models.MigrationResult, error) {
	futureID, err := uuid.Parse(futureTripID)
	if err != nil {
		return nil, utils.ErrFutureTripNotFound
	}

	outcome, err := s.migrationRepo.PromoteTrip(ctx, futureTripID, s.cfg.MigrationAtomic)
	if err != nil {
		return nil, err
	}

	logEntry := db_models.MigrationLog{
		FutureTripID:        futureID,
		RealTripID:          &outcome.RealTripID,
		ItinerariesMigrated: outcome.ItinerariesMigrated,
		ActivitiesMigrated:  outcome.ActivitiesMigrated,
		ErrorDetail:         strings.Join(outcome.Errors, "; "),
	}
	if err := s.migrationRepo.CreateLog(ctx, &logEntry); err != nil {
		// The promotion itself succeeded; a missing audit row is logged, not
		// surfaced.
		log.Printf("Migration of %s succeeded but writing the audit row failed: %v", futureTripID, err)
	}

	return &response_models.MigrationResult{
		FutureTripID:        futureID,
		RealTripID:          outcome.RealTripID,
		ItinerariesMigrated: outcome.ItinerariesMigrated,
		ActivitiesMigrated:  outcome.ActivitiesMigrated,
		Errors:              outcome.Errors,
	}, nil
}

func (s *MigrationService) ListLogs(ctx context.Context, futureTripID string) ([]db_models.MigrationLog, error) {
	return s.migrationRepo.ListLogs(ctx, futureTripID)
}
