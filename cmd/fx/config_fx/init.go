package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"globetrotter/internal/config"
	"globetrotter/pkg/utils"
)

var Module = fx.Provide(
	config.Load,
	provideLogger,
	provideTokenManager,
)

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := utils.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	// HandleServiceError logs through the global logger.
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func provideTokenManager(cfg *config.Config) (*utils.TokenManager, error) {
	return utils.NewTokenManager(cfg.JWTSecret)
}
