// internal/api/handler/api/performance.go
package api

import (
	"net/http"

	"github.com/openquant/vega/internal/analytics"
	"github.com/openquant/vega/internal/api/response"
	"github.com/openquant/vega/internal/market"
)

// PerformanceHandler handles portfolio performance API requests.
type PerformanceHandler struct {
	store *market.Store
}

// NewPerformanceHandler creates a new performance handler.
func NewPerformanceHandler(store *market.Store) *PerformanceHandler {
	return &PerformanceHandler{store: store}
}

// Series returns the portfolio/benchmark time series with summary stats.
func (h *PerformanceHandler) Series(w http.ResponseWriter, r *http.Request) {
	points := h.store.Performance()

	response.JSON(w, http.StatusOK, map[string]any{
		"series":  points,
		"summary": analytics.Summarize(points),
	})
}
