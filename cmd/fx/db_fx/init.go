package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"globetrotter/internal/api/controllers"
	"globetrotter/internal/config"
	"globetrotter/internal/infra"
)

var Module = fx.Provide(
	provideDB,
	fx.Annotate(providePostgresCheck, fx.ResultTags(`group:"health"`)),
)

func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg.PostgresURL, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
	return db, nil
}

func providePostgresCheck(db *gorm.DB) controllers.HealthCheck {
	return controllers.HealthCheck{
		Name: "postgres",
		Check: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
}
