package ai_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"newlife/internal/config"
	"newlife/pkg/utils"
)

// ModelName is the generative model recorded on each itinerary.
type ModelName string

var Module = fx.Provide(
	provideAIClient, provideGenerativeClient, provideEmbeddingClient, provideModelName)

// provideAIClient returns nil without an API key; AI features then answer 503.
func provideAIClient(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (utils.AIClient, error) {
	var client utils.AIClient
	switch cfg.AIProvider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			log.Warn("OPENAI_API_KEY not set, AI features disabled")
			return nil, nil
		}
		client = utils.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIEmbeddingModel)
	default:
		if cfg.GeminiAPIKey == "" {
			log.Warn("GEMINI_API_KEY not set, AI features disabled")
			return nil, nil
		}
		gemini, err := utils.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiEmbeddingModel)
		if err != nil {
			return nil, err
		}
		client = gemini
	}

	log.Info("ai client ready", zap.String("provider", cfg.AIProvider))
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return client.Close() },
	})
	return client, nil
}

// The narrower interfaces must stay untyped nil when the client is absent.

func provideGenerativeClient(client utils.AIClient) utils.GenerativeClientInterface {
	if client == nil {
		return nil
	}
	return client
}

func provideEmbeddingClient(client utils.AIClient) utils.EmbeddingClientInterface {
	if client == nil {
		return nil
	}
	return client
}

func provideModelName(cfg config.Config) ModelName {
	if cfg.AIProvider == "openai" {
		return ModelName(cfg.OpenAIModel)
	}
	return ModelName(cfg.GeminiModel)
}
