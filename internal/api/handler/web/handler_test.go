package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/openquant/vega/internal/clock"
	"github.com/openquant/vega/internal/market"
	"github.com/openquant/vega/internal/metrics"
	"github.com/openquant/vega/internal/storage/signal"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	dataset := market.SampleDataset(time.Now())
	store := market.NewStore(dataset)

	signals := signal.NewMemoryStore(100)
	for _, s := range dataset.Signals {
		if err := signals.Save(context.Background(), s); err != nil {
			t.Fatalf("seeding signals: %v", err)
		}
	}

	session, err := market.NewSession("09:30", "16:00", "America/New_York")
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}

	h, err := NewHandler(Deps{
		Store:   store,
		Signals: signals,
		Session: session,
		Clock:   clock.New(time.Second, zap.NewNop()),
		Metrics: metrics.NewRegistry(),
		Logger:  zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("creating handler: %v", err)
	}
	return h
}

// panelMarkers maps each route to the section id its template renders.
var panelMarkers = map[string]string{
	"/":           `id="panel-overview"`,
	"/signals":    `id="panel-signals"`,
	"/strategies": `id="panel-strategies"`,
	"/options":    `id="panel-options"`,
	"/market":     `id="panel-market"`,
	"/analytics":  `id="panel-analytics"`,
	"/assistant":  `id="panel-assistant"`,
}

func routeHandler(h *Handler, path string) http.HandlerFunc {
	switch path {
	case "/":
		return h.Overview
	case "/signals":
		return h.Signals
	case "/strategies":
		return h.Strategies
	case "/options":
		return h.Options
	case "/market":
		return h.Market
	case "/analytics":
		return h.Analytics
	case "/assistant":
		return h.Assistant
	}
	return nil
}

func TestEachRouteRendersExactlyOnePanel(t *testing.T) {
	h := newTestHandler(t)

	for path, marker := range panelMarkers {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		routeHandler(h, path)(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, rec.Code)
			continue
		}

		body := rec.Body.String()
		if !strings.Contains(body, marker) {
			t.Errorf("GET %s missing panel marker %s", path, marker)
		}
		for otherPath, otherMarker := range panelMarkers {
			if otherPath == path {
				continue
			}
			if strings.Contains(body, otherMarker) {
				t.Errorf("GET %s also contains %s from %s", path, otherMarker, otherPath)
			}
		}
	}
}

func TestOverviewShowsQuotesAndVolatility(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Overview(rec, req)

	body := rec.Body.String()
	for _, want := range []string{"SPY", "$448.73", "+0.48%", "45.7M", "14.23"} {
		if !strings.Contains(body, want) {
			t.Errorf("overview missing %q", want)
		}
	}
}

func TestOverviewRejectsUnknownPath(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	h.Overview(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /nope status = %d, want 404", rec.Code)
	}
}

func TestOptionsSymbolSwitch(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/options?symbol=QQQ", nil)
	rec := httptest.NewRecorder()
	h.Options(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := h.store.SelectedSymbol(); got != "QQQ" {
		t.Errorf("selected symbol = %q, want QQQ", got)
	}
	if !strings.Contains(rec.Body.String(), "QQQ spot") {
		t.Error("options panel does not show the QQQ chain")
	}
}

func TestOptionsUnknownSymbol(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/options?symbol=NOPE", nil)
	rec := httptest.NewRecorder()
	h.Options(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestSignalsRespectsThreshold(t *testing.T) {
	h := newTestHandler(t)

	if err := h.store.SetConfidenceThreshold(0.99); err != nil {
		t.Fatalf("setting threshold: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/signals", nil)
	rec := httptest.NewRecorder()
	h.Signals(rec, req)

	if !strings.Contains(rec.Body.String(), "No signals above the current threshold") {
		t.Error("expected empty-state message at 99% threshold")
	}
}

func TestLayoutExposesAPIKeyToScripts(t *testing.T) {
	dataset := market.SampleDataset(time.Now())
	session, err := market.NewSession("09:30", "16:00", "America/New_York")
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}

	h, err := NewHandler(Deps{
		Store:   market.NewStore(dataset),
		Signals: signal.NewMemoryStore(100),
		Session: session,
		Clock:   clock.New(time.Second, zap.NewNop()),
		Metrics: metrics.NewRegistry(),
		Logger:  zap.NewNop(),
		APIKey:  "secret-key",
	})
	if err != nil {
		t.Fatalf("creating handler: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Overview(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `<meta name="api-key" content="secret-key">`) {
		t.Error("layout missing api-key meta tag")
	}
	if !strings.Contains(body, "function apiFetch") {
		t.Error("layout missing apiFetch helper")
	}
}

func TestLayoutShowsSessionBadgeAndClock(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/market", nil)
	rec := httptest.NewRecorder()
	h.Market(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `id="session-badge"`) {
		t.Error("layout missing session badge")
	}
	if !strings.Contains(body, `id="clock"`) {
		t.Error("layout missing clock element")
	}
}
