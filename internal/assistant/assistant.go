// Package assistant backs the AI assistant tab. It composes a market
// context prompt from the dashboard dataset and forwards questions to the
// configured LLM provider.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/openquant/vega/internal/core"
	"github.com/openquant/vega/internal/format"
	"github.com/openquant/vega/internal/llm"
	"github.com/openquant/vega/internal/market"
	"github.com/openquant/vega/internal/metrics"
	"github.com/openquant/vega/internal/storage/signal"
)

// requestTimeout bounds one assistant round trip.
const requestTimeout = 30 * time.Second

// Answer is the assistant's reply to one question.
type Answer struct {
	Provider     string `json:"provider"`
	Content      string `json:"content"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}

// Service answers dashboard questions with market context.
type Service struct {
	provider llm.Provider
	store    *market.Store
	signals  signal.Store
	metrics  *metrics.Registry
	logger   *zap.Logger
}

// New creates an assistant service.
func New(provider llm.Provider, store *market.Store, signals signal.Store, reg *metrics.Registry, logger *zap.Logger) *Service {
	return &Service{
		provider: provider,
		store:    store,
		signals:  signals,
		metrics:  reg,
		logger:   logger,
	}
}

// Ask sends a single question with the current market context.
func (s *Service) Ask(ctx context.Context, question string) (*Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, core.WrapError(core.ErrBadRequest, errors.New("question is empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	start := time.Now()
	resp, err := s.provider.Chat(ctx, llm.ChatRequest{
		SystemPrompt: s.systemPrompt(ctx),
		Messages:     []llm.Message{{Role: "user", Content: question}},
		MaxTokens:    1024,
	})
	elapsed := time.Since(start).Seconds()

	if err != nil {
		s.metrics.RecordAssistantRequest(s.provider.Name(), "error", elapsed)
		s.logger.Warn("assistant request failed",
			zap.String("provider", s.provider.Name()),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, core.WrapError(core.ErrLLMTimeout, err)
		}
		return nil, core.WrapError(core.ErrLLMFailed, err)
	}

	s.metrics.RecordAssistantRequest(s.provider.Name(), "ok", elapsed)

	return &Answer{
		Provider:     s.provider.Name(),
		Content:      resp.Content,
		InputTokens:  resp.Usage.InputTokens,
		OutputTokens: resp.Usage.OutputTokens,
	}, nil
}

// systemPrompt renders the current dashboard state as assistant context.
func (s *Service) systemPrompt(ctx context.Context) string {
	var b strings.Builder
	b.WriteString("You are the assistant on an options-trading dashboard. ")
	b.WriteString("Answer concisely using the market context below. ")
	b.WriteString("Do not give financial advice; describe what the data shows.\n\n")

	b.WriteString("Quotes:\n")
	for _, q := range s.store.Quotes() {
		fmt.Fprintf(&b, "- %s %s (%s, volume %s)\n",
			q.Symbol, format.Currency(q.Price), format.Percent(q.ChangePercent), format.Volume(q.Volume))
	}

	vol := s.store.Volatility()
	fmt.Fprintf(&b, "\nVolatility index: %.2f (%s), regime %s, percentile %.1f\n",
		vol.Level, format.Percent(vol.Change), vol.Regime, vol.BoundedPercentile())

	sigs, err := s.signals.List(ctx, signal.ListFilter{Limit: 5})
	if err == nil && len(sigs) > 0 {
		b.WriteString("\nActive signals:\n")
		for _, sig := range sigs {
			fmt.Fprintf(&b, "- %s %s (%s, confidence %s)\n",
				sig.Symbol, sig.Type, sig.Strength, format.Confidence(sig.Confidence))
		}
	}

	return b.String()
}
