package mail_fx

import (
	"context"
	"strings"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"globetrotter/internal/config"
	"globetrotter/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) services.MailServiceInterface {
	mailer := deliveryMailer(cfg, logger)
	if cfg.MailQueue != config.MailQueueRedis {
		return mailer
	}

	opt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.MailQueueDB,
	}
	client := asynq.NewClient(opt)
	srv, mux := services.NewMailWorker(opt, mailer, logger)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.Info("Starting booking mail worker", zap.String("queue", services.MailQueueName))
			return srv.Start(mux)
		},
		OnStop: func(context.Context) error {
			srv.Shutdown()
			return client.Close()
		},
	})
	return services.NewQueuedMailService(client, logger)
}

func deliveryMailer(cfg *config.Config, logger *zap.Logger) services.MailServiceInterface {
	if cfg.SMTPHost == "" {
		logger.Info("SMTP_HOST not set, booking confirmations will only be logged")
		return services.NewLogMailService(logger)
	}
	return services.NewSMTPMailService(services.SMTPConfig{
		Host:       cfg.SMTPHost,
		Port:       cfg.SMTPPort,
		Username:   cfg.SMTPUsername,
		Password:   cfg.SMTPPassword,
		From:       cfg.SMTPFrom,
		FromName:   cfg.SMTPFromName,
		UseSSL:     cfg.SMTPUseSSL,
		RequireTLS: cfg.IsProduction(),
		AppName:    cfg.SMTPFromName,
		AppBaseURL: firstOrigin(cfg.FrontendURL),
	}, logger)
}

// firstOrigin picks the first entry of the comma separated FRONTEND_URL.
func firstOrigin(urls string) string {
	for _, u := range strings.Split(urls, ",") {
		if u = strings.TrimSpace(u); u != "" && u != "*" {
			return u
		}
	}
	return ""
}
