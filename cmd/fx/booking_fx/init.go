package booking_fx

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"globetrotter/internal/api/controllers"
	"globetrotter/internal/config"
	"globetrotter/internal/infra"
	"globetrotter/internal/pricing"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

type storeResult struct {
	fx.Out

	Store repositories.BookingStore
	Check controllers.HealthCheck `group:"health"`
}

var Module = fx.Provide(
	provideBookingStore,
	pricing.DefaultCatalog,
	services.NewBookingService,
)

func provideBookingStore(lc fx.Lifecycle, cfg *config.Config, db *gorm.DB, logger *zap.Logger) (storeResult, error) {
	logger.Info("Booking store selected", zap.String("driver", cfg.BookingStore))

	switch cfg.BookingStore {
	case config.StorePostgres:
		return storeResult{
			Store: repositories.NewGormBookingStore(db),
			Check: controllers.HealthCheck{Name: "booking_store", Check: func(context.Context) error { return nil }},
		}, nil

	case config.StoreMongo:
		mdb, err := infra.InitMongo(cfg.MongoURL, cfg.MongoDatabase, logger)
		if err != nil {
			return storeResult{}, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := repositories.EnsureBookingIndexes(ctx, mdb); err != nil {
			return storeResult{}, fmt.Errorf("failed to create booking indexes: %w", err)
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				infra.CloseMongo(ctx, mdb, logger)
				return nil
			},
		})
		return storeResult{
			Store: repositories.NewMongoBookingStore(mdb),
			Check: controllers.HealthCheck{
				Name:  "mongo",
				Check: func(ctx context.Context) error { return mdb.Client().Ping(ctx, nil) },
			},
		}, nil

	case config.StoreMemory:
		return storeResult{
			Store: repositories.NewMemoryBookingStore(),
			Check: controllers.HealthCheck{Name: "booking_store", Check: func(context.Context) error { return nil }},
		}, nil
	}
	return storeResult{}, fmt.Errorf("unknown booking store %q", cfg.BookingStore)
}
