// Package canned provides a deterministic offline provider used when no
// LLM API key is configured. It keeps the assistant tab functional in
// demos and tests.
package canned

import (
	"context"
	"strings"

	"github.com/openquant/vega/internal/llm"
)

// Provider answers from a small keyword table.
type Provider struct{}

// New creates a canned provider.
func New() *Provider {
	return &Provider{}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "canned"
}

var responses = []struct {
	keywords []string
	answer   string
}{
	{
		keywords: []string{"vix", "volatility"},
		answer:   "The volatility index is in a low regime today. Premium selling strategies tend to underperform when implied volatility sits this far below its historical percentile.",
	},
	{
		keywords: []string{"signal", "confidence"},
		answer:   "Current signals are ranked by model confidence. Anything above the configured threshold appears on the signals tab; the strongest conviction right now is the SPY long call.",
	},
	{
		keywords: []string{"iron condor", "condor", "spread"},
		answer:   "An iron condor sells an out-of-the-money call spread and put spread on the same expiry. Profit is capped at the net credit; loss is capped at the wing width minus the credit.",
	},
	{
		keywords: []string{"0dte", "expiry", "expiration"},
		answer:   "0DTE contracts expire at today's close. Gamma risk grows sharply into the final hour, so position sizing matters more than direction.",
	},
}

const fallback = "I can answer questions about today's quotes, the volatility regime, open strategies, and active signals. Try asking about the VIX, a signal, or a strategy type."

// Chat returns a deterministic answer based on the last user message.
func (p *Provider) Chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var question string
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == "user" {
			question = strings.ToLower(req.Messages[i].Content)
			break
		}
	}

	answer := fallback
	for _, r := range responses {
		for _, kw := range r.keywords {
			if strings.Contains(question, kw) {
				answer = r.answer
				break
			}
		}
		if answer != fallback {
			break
		}
	}

	return &llm.ChatResponse{
		Content:      answer,
		FinishReason: "stop",
	}, nil
}
