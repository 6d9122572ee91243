package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pricepulse/internal/config"
	"pricepulse/internal/infra"
	"pricepulse/internal/repositories"
)

var Module = fx.Provide(
	provideDB, provideTxManager)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}

func provideTxManager(db *gorm.DB) repositories.TxManager {
	return repositories.NewTxManager(db)
}
