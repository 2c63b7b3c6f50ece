package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"globetrotter/internal/api/controllers"
	"globetrotter/internal/config"
	"globetrotter/internal/infra"
	"globetrotter/internal/repositories"
	mem "globetrotter/pkg/memcache"
)

const sweepInterval = 5 * time.Minute

type cacheResult struct {
	fx.Out

	Cache repositories.PlanCache
	Check controllers.HealthCheck `group:"health"`
}

var Module = fx.Provide(providePlanCache)

func providePlanCache(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (cacheResult, error) {
	if cfg.CacheDriver == config.CacheRedis {
		client, err := infra.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, logger)
		if err != nil {
			return cacheResult{}, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error { return client.Close() },
		})
		return cacheResult{
			Cache: repositories.NewRedisPlanCache(client, cfg.PlanCacheTTL),
			Check: controllers.HealthCheck{
				Name:  "redis",
				Check: func(ctx context.Context) error { return client.Ping(ctx).Err() },
			},
		}, nil
	}

	store := mem.NewTTLStore[repositories.CachedPlan]()
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go sweep(store, done, logger)
			return nil
		},
		OnStop: func(context.Context) error {
			close(done)
			return nil
		},
	})
	return cacheResult{
		Cache: repositories.NewMemoryPlanCache(store, cfg.PlanCacheTTL),
		Check: controllers.HealthCheck{
			Name:  "plan_cache",
			Check: func(context.Context) error { return nil },
		},
	}, nil
}

func sweep(store *mem.TTLStore[repositories.CachedPlan], done <-chan struct{}, logger *zap.Logger) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if n := store.Sweep(); n > 0 {
				logger.Debug("expired plans swept", zap.Int("count", n))
			}
		}
	}
}
