package ai

import (
	"context"
	"errors"
	"strings"

	"rankedlog/internal/config"
)

// ProviderRegistry registers the providers known to this build. Factories
// fail when their configuration is incomplete so callers can degrade to the
// deterministic fallback.
func ProviderRegistry(cfg config.Config) *Registry {
	reg := NewRegistry()

	reg.Register("ollama", func(ctx context.Context, model string) (Provider, error) {
		_ = ctx
		m := strings.TrimSpace(model)
		if m == "" {
			m = cfg.OllamaModel
		}
		return NewOllamaProvider(cfg.OllamaBaseURL, m), nil
	})

	reg.Register("openrouter", func(ctx context.Context, model string) (Provider, error) {
		_ = ctx
		if strings.TrimSpace(cfg.OpenRouterAPIKey) == "" {
			return nil, errors.New("openrouter: OPENROUTER_API_KEY is empty")
		}
		m := strings.TrimSpace(model)
		if m == "" {
			m = cfg.OpenRouterModel
		}
		return NewOpenRouterProvider(cfg.OpenRouterBaseURL, cfg.OpenRouterAPIKey, m,
			cfg.OpenRouterSiteURL, cfg.OpenRouterAppName), nil
	})

	return reg
}
