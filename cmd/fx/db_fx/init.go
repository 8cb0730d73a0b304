package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"travelog/internal/infra"
	"travelog/pkg/utils"
)

var Module = fx.Provide(
	utils.LoadConfig,
	provideDB,
)

func provideDB(cfg *utils.Config) *gorm.DB {
	return infra.InitSQLite(cfg)
}
