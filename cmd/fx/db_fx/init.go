package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"mentoria/internal/infra"
	"mentoria/pkg/config"
)

var Module = fx.Provide(provideDatabase)

func provideDatabase(lc fx.Lifecycle, cfg *config.Config) *gorm.DB {
	db := infra.InitPostgresql(cfg)
	lc.Append(fx.StopHook(func() {
		infra.ClosePostgresql(db)
	}))
	return db
}
