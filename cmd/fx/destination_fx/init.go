package destination_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideDestinationRepo, services.NewDestinationService),
	fx.Invoke(seedCatalog),
)

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func seedCatalog(lc fx.Lifecycle, destinations services.DestinationServiceInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return destinations.SeedCatalog(ctx)
		},
	})
}
