package llm

import (
	"fmt"

	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/config"
)

// NewProvider creates a provider from the AI config
func NewProvider(cfg *config.AIConfig) (Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("no AI configuration")
	}

	switch cfg.Provider {
	case "ollama":
		return NewOllamaProvider(cfg.Host, cfg.Model), nil

	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai requires an API key")
		}
		return NewOpenAIProvider(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
