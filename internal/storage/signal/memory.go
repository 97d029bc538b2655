package signal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/openquant/vega/internal/core"
)

// MemoryStore is an in-memory signal store. When capacity is exceeded the
// oldest entries are evicted.
type MemoryStore struct {
	signals []core.Signal
	maxSize int
	mu      sync.RWMutex
	counter int64
}

// NewMemoryStore creates a new in-memory store with max capacity.
func NewMemoryStore(maxSize int) *MemoryStore {
	return &MemoryStore{
		signals: make([]core.Signal, 0, maxSize),
		maxSize: maxSize,
	}
}

// Save adds a signal to the store and assigns it an ID if it has none.
func (m *MemoryStore) Save(ctx context.Context, sig core.Signal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counter++
	if sig.ID == "" {
		sig.ID = fmt.Sprintf("sig_%d_%d", time.Now().UnixNano(), m.counter)
	}

	m.signals = append(m.signals, sig)

	if len(m.signals) > m.maxSize {
		m.signals = m.signals[len(m.signals)-m.maxSize:]
	}

	return nil
}

// GetByID retrieves a signal by ID.
func (m *MemoryStore) GetByID(ctx context.Context, id string) (*core.Signal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.signals {
		if m.signals[i].ID == id {
			sig := m.signals[i]
			return &sig, nil
		}
	}
	return nil, core.ErrSignalNotFound
}

// List returns signals matching the filter, newest first.
func (m *MemoryStore) List(ctx context.Context, filter ListFilter) ([]core.Signal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]core.Signal, 0, len(m.signals))
	for i := len(m.signals) - 1; i >= 0; i-- {
		if m.matches(m.signals[i], filter) {
			result = append(result, m.signals[i])
		}
	}

	if filter.Offset >= len(result) {
		return []core.Signal{}, nil
	}
	if filter.Offset > 0 {
		result = result[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(result) {
		result = result[:filter.Limit]
	}

	return result, nil
}

// Count returns the count of matching signals.
func (m *MemoryStore) Count(ctx context.Context, filter ListFilter) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, sig := range m.signals {
		if m.matches(sig, filter) {
			count++
		}
	}
	return count, nil
}

func (m *MemoryStore) matches(sig core.Signal, filter ListFilter) bool {
	if filter.Symbol != "" && sig.Symbol != filter.Symbol {
		return false
	}
	if filter.Type != "" && sig.Type != filter.Type {
		return false
	}
	if filter.Strength != "" && sig.Strength != filter.Strength {
		return false
	}
	if sig.Confidence < filter.MinConfidence {
		return false
	}
	if !filter.From.IsZero() && sig.GeneratedAt.Before(filter.From) {
		return false
	}
	if !filter.To.IsZero() && sig.GeneratedAt.After(filter.To) {
		return false
	}
	return true
}
