package future_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"travelog/internal/repositories"
	"travelog/internal/services"
	"travelog/pkg/utils"
)

var Module = fx.Provide(
	provideFutureRepo,
	provideMigrationRepo,
	provideFutureService,
	provideMigrationService,
)

func provideFutureRepo(db *gorm.DB) repositories.FutureRepository {
	return repositories.NewFutureRepository(db)
}

func provideMigrationRepo(db *gorm.DB) repositories.MigrationRepository {
	return repositories.NewMigrationRepository(db)
}

func provideFutureService(futureRepo repositories.FutureRepository) services.FutureServiceInterface {
	return services.NewFutureService(futureRepo)
}

func provideMigrationService(
	migrationRepo repositories.MigrationRepository,
	cfg *utils.Config,
) services.MigrationServiceInterface {
	return services.NewMigrationService(migrationRepo, cfg)
}
