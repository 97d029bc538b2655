// internal/api/handler/api/signals_test.go
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/openquant/vega/internal/api/response"
	"github.com/openquant/vega/internal/core"
	"github.com/openquant/vega/internal/metrics"
	"github.com/openquant/vega/internal/storage/signal"
)

func TestSignalsHandler_List(t *testing.T) {
	store := signal.NewMemoryStore(100)
	store.Save(context.Background(), core.Signal{
		Symbol:      "SPY",
		Type:        core.SignalLongCall,
		Strength:    core.StrengthStrong,
		Confidence:  0.85,
		GeneratedAt: time.Now(),
	})

	handler := NewSignalsHandler(store, metrics.NewRegistry())

	req := httptest.NewRequest("GET", "/api/signals", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var resp response.SuccessResponse
	json.Unmarshal(w.Body.Bytes(), &resp)

	data := resp.Data.(map[string]any)
	signals := data["signals"].([]any)
	if len(signals) != 1 {
		t.Errorf("expected 1 signal, got %d", len(signals))
	}
}

func TestSignalsHandler_ListWithFilters(t *testing.T) {
	store := signal.NewMemoryStore(100)
	store.Save(context.Background(), core.Signal{
		Symbol:      "SPY",
		Type:        core.SignalLongCall,
		Confidence:  0.9,
		GeneratedAt: time.Now(),
	})
	store.Save(context.Background(), core.Signal{
		Symbol:      "QQQ",
		Type:        core.SignalLongPut,
		Confidence:  0.55,
		GeneratedAt: time.Now(),
	})

	handler := NewSignalsHandler(store, metrics.NewRegistry())

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"by symbol", "?symbol=SPY", 1},
		{"by type", "?type=long_put", 1},
		{"by min confidence", "?min_confidence=0.8", 1},
		{"no match", "?symbol=IWM", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/signals"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.List(w, req)

			var resp response.SuccessResponse
			json.Unmarshal(w.Body.Bytes(), &resp)

			data := resp.Data.(map[string]any)
			signals := data["signals"].([]any)
			if len(signals) != tt.want {
				t.Errorf("expected %d signals, got %d", tt.want, len(signals))
			}
		})
	}
}

func TestSignalsHandler_GetByID(t *testing.T) {
	store := signal.NewMemoryStore(100)
	store.Save(context.Background(), core.Signal{
		Symbol:      "SPY",
		GeneratedAt: time.Now(),
	})

	signals, _ := store.List(context.Background(), signal.ListFilter{})
	signalID := signals[0].ID

	handler := NewSignalsHandler(store, metrics.NewRegistry())

	req := httptest.NewRequest("GET", "/api/signals/"+signalID, nil)
	w := httptest.NewRecorder()

	handler.GetByID(w, req, signalID)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestSignalsHandler_GetByID_NotFound(t *testing.T) {
	store := signal.NewMemoryStore(100)
	handler := NewSignalsHandler(store, metrics.NewRegistry())

	req := httptest.NewRequest("GET", "/api/signals/missing", nil)
	w := httptest.NewRecorder()

	handler.GetByID(w, req, "missing")

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}

	var resp response.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Error.Code != "SIGNAL_NOT_FOUND" {
		t.Errorf("expected SIGNAL_NOT_FOUND, got %s", resp.Error.Code)
	}
}
