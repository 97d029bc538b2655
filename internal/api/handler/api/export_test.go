// internal/api/handler/api/export_test.go
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/openquant/vega/internal/api/response"
	"github.com/openquant/vega/internal/core"
	"github.com/openquant/vega/internal/market"
	"github.com/openquant/vega/internal/metrics"
	"github.com/openquant/vega/internal/storage/archive"
	"github.com/openquant/vega/internal/storage/signal"
)

func testSignalStore(t *testing.T) signal.Store {
	t.Helper()
	store := signal.NewMemoryStore(100)
	store.Save(context.Background(), core.Signal{
		Symbol:      "SPY",
		Type:        core.SignalLongCall,
		Strength:    core.StrengthStrong,
		Confidence:  0.85,
		GeneratedAt: time.Now(),
	})
	return store
}

func TestExportHandler_Trigger(t *testing.T) {
	fs, err := archive.NewLocalFS(t.TempDir())
	if err != nil {
		t.Fatalf("creating localfs: %v", err)
	}
	exporter := archive.NewExporter(fs, zap.NewNop())

	now := time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC)
	handler := NewExportHandler(testStore(), testSignalStore(t), exporter, metrics.NewRegistry(), func() time.Time { return now })

	req := httptest.NewRequest("POST", "/api/export", nil)
	w := httptest.NewRecorder()

	handler.Trigger(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	var resp response.SuccessResponse
	json.Unmarshal(w.Body.Bytes(), &resp)

	data := resp.Data.(map[string]any)
	path, _ := data["path"].(string)
	if !strings.HasPrefix(path, "snapshots/2026/08/24/") {
		t.Errorf("unexpected snapshot path %q", path)
	}

	raw, err := fs.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("reading exported snapshot: %v", err)
	}
	var snap market.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		t.Fatalf("exported snapshot is not valid JSON: %v", err)
	}
	if len(snap.Signals) != 1 {
		t.Errorf("expected 1 signal in snapshot, got %d", len(snap.Signals))
	}
	if len(snap.Signals) > 0 && snap.Signals[0].Symbol != "SPY" {
		t.Errorf("unexpected signal symbol %q", snap.Signals[0].Symbol)
	}
}

func TestExportHandler_MethodNotAllowed(t *testing.T) {
	fs, err := archive.NewLocalFS(t.TempDir())
	if err != nil {
		t.Fatalf("creating localfs: %v", err)
	}
	handler := NewExportHandler(testStore(), signal.NewMemoryStore(10), archive.NewExporter(fs, zap.NewNop()), metrics.NewRegistry(), nil)

	req := httptest.NewRequest("GET", "/api/export", nil)
	w := httptest.NewRecorder()

	handler.Trigger(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}
