package payment_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"globetrotter/internal/config"
	"globetrotter/internal/services"
)

var Module = fx.Provide(providePaymentService)

func providePaymentService(cfg *config.Config, logger *zap.Logger) services.PaymentService {
	logger.Info("Payment provider selected", zap.String("provider", cfg.PaymentProvider))
	if cfg.PaymentProvider == config.PaymentStripe {
		return services.NewStripePaymentService(services.StripeConfig{
			SecretKey:     cfg.StripeSecretKey,
			PaymentMethod: cfg.StripePaymentMethod,
		}, logger)
	}
	return services.NewSimulatedPaymentService(logger)
}
