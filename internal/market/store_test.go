package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openquant/vega/internal/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(SampleDataset(time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)))
}

func TestStore_Quotes(t *testing.T) {
	s := newTestStore(t)

	quotes := s.Quotes()
	require.Len(t, quotes, 4)
	assert.Equal(t, "SPY", quotes[0].Symbol)

	q, err := s.Quote("QQQ")
	require.NoError(t, err)
	assert.Equal(t, 378.42, q.Price)

	_, err = s.Quote("TSLA")
	assert.ErrorIs(t, err, core.ErrSymbolNotFound)
}

func TestStore_QuotesReturnsCopy(t *testing.T) {
	s := newTestStore(t)

	quotes := s.Quotes()
	quotes[0].Price = -1

	fresh, err := s.Quote("SPY")
	require.NoError(t, err)
	assert.Equal(t, 448.73, fresh.Price)
}

func TestStore_Chain(t *testing.T) {
	s := newTestStore(t)

	ch, err := s.Chain("SPY")
	require.NoError(t, err)
	assert.Equal(t, "SPY", ch.Symbol)
	assert.NotEmpty(t, ch.Contracts)

	// Every strike has a call and a put row.
	sides := map[float64]map[core.OptionSide]bool{}
	for _, c := range ch.Contracts {
		if sides[c.Strike] == nil {
			sides[c.Strike] = map[core.OptionSide]bool{}
		}
		sides[c.Strike][c.Side] = true
	}
	for strike, have := range sides {
		assert.True(t, have[core.SideCall], "strike %v missing call", strike)
		assert.True(t, have[core.SidePut], "strike %v missing put", strike)
	}

	_, err = s.Chain("TSLA")
	assert.ErrorIs(t, err, core.ErrSymbolNotFound)
}

func TestStore_SelectedSymbol(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, "SPY", s.SelectedSymbol())

	require.NoError(t, s.SetSelectedSymbol("QQQ"))
	assert.Equal(t, "QQQ", s.SelectedSymbol())

	err := s.SetSelectedSymbol("TSLA")
	assert.ErrorIs(t, err, core.ErrSymbolNotFound)
	assert.Equal(t, "QQQ", s.SelectedSymbol(), "failed switch must not change selection")
}

func TestStore_ConfidenceThreshold(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, 0.6, s.ConfidenceThreshold())

	require.NoError(t, s.SetConfidenceThreshold(0.75))
	assert.Equal(t, 0.75, s.ConfidenceThreshold())

	assert.Error(t, s.SetConfidenceThreshold(-0.1))
	assert.Error(t, s.SetConfidenceThreshold(1.1))
	assert.Equal(t, 0.75, s.ConfidenceThreshold())
}

func TestStore_SystemToggle(t *testing.T) {
	s := newTestStore(t)

	assert.True(t, s.SystemActive())
	s.SetSystemActive(false)
	assert.False(t, s.SystemActive())
}

func TestStore_Symbols(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, []string{"IWM", "QQQ", "SPY"}, s.Symbols())
}

func TestStore_Snapshot(t *testing.T) {
	now := time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)
	dataset := SampleDataset(now)
	s := NewStore(dataset)

	snap := s.Snapshot(now, dataset.Signals)
	assert.Equal(t, now, snap.TakenAt)
	assert.Len(t, snap.Quotes, 4)
	assert.Len(t, snap.Performance, 30)
	assert.NotEmpty(t, snap.Strategies)
	assert.NotEmpty(t, snap.Signals)
}
