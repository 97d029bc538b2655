package market

import (
	"sort"
	"sync"
	"time"

	"github.com/openquant/vega/internal/core"
)

// Store holds the in-memory market dataset plus the mutable dashboard
// settings (system toggle, confidence threshold, selected symbol). All
// reads return copies so callers cannot mutate the seeded data.
type Store struct {
	mu sync.RWMutex

	quotes      []core.Quote
	volatility  core.VolatilitySnapshot
	strategies  []core.Strategy
	chains      map[string]core.OptionChain
	performance []core.PerformancePoint

	systemActive        bool
	confidenceThreshold float64
	selectedSymbol      string
}

// NewStore creates a store seeded from the dataset. The first quote's
// symbol becomes the initially selected symbol.
func NewStore(data Dataset) *Store {
	s := &Store{
		quotes:              data.Quotes,
		volatility:          data.Volatility,
		strategies:          data.Strategies,
		chains:              make(map[string]core.OptionChain, len(data.Chains)),
		performance:         data.Performance,
		systemActive:        true,
		confidenceThreshold: 0.6,
	}
	for _, ch := range data.Chains {
		s.chains[ch.Symbol] = ch
	}
	if len(data.Quotes) > 0 {
		s.selectedSymbol = data.Quotes[0].Symbol
	}
	return s
}

// Quotes returns all quotes in seed order.
func (s *Store) Quotes() []core.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Quote, len(s.quotes))
	copy(out, s.quotes)
	return out
}

// Quote returns the quote for a symbol.
func (s *Store) Quote(symbol string) (core.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, q := range s.quotes {
		if q.Symbol == symbol {
			return q, nil
		}
	}
	return core.Quote{}, core.ErrSymbolNotFound
}

// Symbols returns the sorted set of symbols with an options chain.
func (s *Store) Symbols() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.chains))
	for sym := range s.chains {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// Volatility returns the volatility index snapshot.
func (s *Store) Volatility() core.VolatilitySnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.volatility
}

// Strategies returns the strategy book.
func (s *Store) Strategies() []core.Strategy {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Strategy, len(s.strategies))
	copy(out, s.strategies)
	return out
}

// Chain returns the options chain for a symbol.
func (s *Store) Chain(symbol string) (core.OptionChain, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ch, ok := s.chains[symbol]
	if !ok {
		return core.OptionChain{}, core.ErrSymbolNotFound
	}
	return ch, nil
}

// Performance returns the portfolio-vs-benchmark series.
func (s *Store) Performance() []core.PerformancePoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.PerformancePoint, len(s.performance))
	copy(out, s.performance)
	return out
}

// SystemActive reports the manual trading-system toggle.
func (s *Store) SystemActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.systemActive
}

// SetSystemActive flips the manual trading-system toggle.
func (s *Store) SetSystemActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.systemActive = active
}

// ConfidenceThreshold returns the minimum confidence applied to the
// signals list.
func (s *Store) ConfidenceThreshold() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.confidenceThreshold
}

// SetConfidenceThreshold updates the threshold. Values outside [0, 1] are
// rejected.
func (s *Store) SetConfidenceThreshold(v float64) error {
	if v < 0 || v > 1 {
		return core.ErrBadRequest
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confidenceThreshold = v
	return nil
}

// SelectedSymbol returns the symbol whose chain the options panel shows.
func (s *Store) SelectedSymbol() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedSymbol
}

// SetSelectedSymbol switches the options panel to another symbol. The
// symbol must have a chain.
func (s *Store) SetSelectedSymbol(symbol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.chains[symbol]; !ok {
		return core.ErrSymbolNotFound
	}
	s.selectedSymbol = symbol
	return nil
}

// Snapshot captures the full dashboard state for export.
type Snapshot struct {
	TakenAt     time.Time               `json:"taken_at"`
	Quotes      []core.Quote            `json:"quotes"`
	Volatility  core.VolatilitySnapshot `json:"volatility"`
	Strategies  []core.Strategy         `json:"strategies"`
	Performance []core.PerformancePoint `json:"performance"`
	Signals     []core.Signal           `json:"signals"`
}

// Snapshot returns a point-in-time copy of everything the dashboard shows.
// Signals live in their own store, so the caller supplies them.
func (s *Store) Snapshot(now time.Time, signals []core.Signal) Snapshot {
	return Snapshot{
		TakenAt:     now,
		Quotes:      s.Quotes(),
		Volatility:  s.Volatility(),
		Strategies:  s.Strategies(),
		Performance: s.Performance(),
		Signals:     signals,
	}
}
