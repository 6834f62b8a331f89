package ai

import (
	"fmt"

	"shellwatch/internal/config"
)

// NewTextGenerator builds the backend named by cfg.Backend. A non-nil cache
// wraps it in a CachedGenerator.
func NewTextGenerator(cfg config.AIConfig, cache PromptCache) (TextGenerator, error) {
	var gen TextGenerator
	switch cfg.Backend {
	case config.TextGeneratorStub, "":
		gen = NewStubGenerator()
	case config.TextGeneratorGemini:
		if cfg.APIKey == "" {
			return nil, ErrMissingAPIKey
		}
		gen = NewGeminiClient(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.Timeout)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}

	if cache != nil {
		gen = NewCachedGenerator(gen, cache, cfg.CacheTTL)
	}
	return gen, nil
}
