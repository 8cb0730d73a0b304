package files_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"travelog/internal/repositories"
	"travelog/internal/services"
	"travelog/pkg/utils"
)

var Module = fx.Provide(
	provideFileRepo,
	provideFileService,
)

func provideFileRepo(db *gorm.DB) repositories.FileRepository {
	return repositories.NewFileRepository(db)
}

func provideFileService(fileRepo repositories.FileRepository, cfg *utils.Config) services.FileServiceInterface {
	return services.NewFileService(fileRepo, cfg)
}
