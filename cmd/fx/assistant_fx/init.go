package assistant_fx

import (
	"errors"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"globetrotter/internal/config"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

var Module = fx.Provide(
	ProvideLLMClient,
	services.NewAssistantService,
)

// ProvideLLMClient returns a nil client when no provider is configured or
// the provider has no key; the assistant then composes its answers.
func ProvideLLMClient(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (utils.LLMClient, error) {
	if cfg.AssistantProvider == "" {
		logger.Info("No assistant provider configured, suggestions will be composed")
		return nil, nil
	}

	apiKey, model := cfg.OpenAIAPIKey, cfg.OpenAIModel
	if cfg.AssistantProvider == "gemini" {
		apiKey, model = cfg.GeminiAPIKey, cfg.GeminiModel
	}

	client, err := utils.NewLLMClient(cfg.AssistantProvider, apiKey, model)
	if err != nil {
		if errors.Is(err, utils.ErrAssistantUnavailable) {
			logger.Warn("Assistant disabled", zap.Error(err))
			return nil, nil
		}
		return nil, err
	}

	logger.Info("Assistant client initialized",
		zap.String("provider", client.Provider()),
		zap.String("model", model),
	)
	lc.Append(fx.StopHook(client.Close))
	return client, nil
}
