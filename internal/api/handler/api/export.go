// internal/api/handler/api/export.go
package api

import (
	"net/http"
	"time"

	"github.com/openquant/vega/internal/api/response"
	"github.com/openquant/vega/internal/core"
	"github.com/openquant/vega/internal/market"
	"github.com/openquant/vega/internal/metrics"
	"github.com/openquant/vega/internal/storage/archive"
	"github.com/openquant/vega/internal/storage/signal"
)

// ExportHandler triggers dashboard snapshot exports to the archive.
type ExportHandler struct {
	store    *market.Store
	signals  signal.Store
	exporter *archive.Exporter
	metrics  *metrics.Registry
	now      func() time.Time
}

// NewExportHandler creates a new export handler.
func NewExportHandler(store *market.Store, signals signal.Store, exporter *archive.Exporter, reg *metrics.Registry, now func() time.Time) *ExportHandler {
	if now == nil {
		now = time.Now
	}
	return &ExportHandler{store: store, signals: signals, exporter: exporter, metrics: reg, now: now}
}

// Trigger writes a snapshot of the current dashboard state.
func (h *ExportHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		response.Error(w, http.StatusMethodNotAllowed, core.ErrBadRequest)
		return
	}

	sigs, err := h.signals.List(r.Context(), signal.ListFilter{})
	if err != nil {
		h.metrics.RecordExport("error")
		response.Error(w, http.StatusInternalServerError, err)
		return
	}

	path, err := h.exporter.Export(r.Context(), h.store.Snapshot(h.now(), sigs))
	if err != nil {
		h.metrics.RecordExport("error")
		response.Error(w, http.StatusInternalServerError, err)
		return
	}

	h.metrics.RecordExport("ok")
	response.JSON(w, http.StatusCreated, map[string]any{
		"path": path,
	})
}
