package factory

import (
	"fmt"

	"github.com/openquant/vega/internal/config"
	"github.com/openquant/vega/internal/llm"
	"github.com/openquant/vega/internal/llm/canned"
	"github.com/openquant/vega/internal/llm/claude"
	"github.com/openquant/vega/internal/llm/openai"
)

// New creates an LLM provider based on configuration. An empty provider
// falls back to the canned offline provider.
func New(cfg config.LLMConfig) (llm.Provider, error) {
	switch cfg.Provider {
	case "claude":
		return claude.New(cfg.Claude.APIKey, cfg.Claude.Model)
	case "openai":
		return openai.New(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	case "", "canned":
		return canned.New(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}
