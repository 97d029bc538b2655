// internal/api/handler/api/options.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/openquant/vega/internal/api/response"
	"github.com/openquant/vega/internal/market"
)

// OptionsHandler handles options chain API requests.
type OptionsHandler struct {
	store *market.Store
	now   func() time.Time
}

// NewOptionsHandler creates a new options handler. The now func feeds DTE
// so the chain ages with the dashboard clock.
func NewOptionsHandler(store *market.Store, now func() time.Time) *OptionsHandler {
	if now == nil {
		now = time.Now
	}
	return &OptionsHandler{store: store, now: now}
}

// Chain returns the options chain for ?symbol=, defaulting to the
// currently selected symbol.
func (h *OptionsHandler) Chain(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(r.URL.Query().Get("symbol"))
	if symbol == "" {
		symbol = h.store.SelectedSymbol()
	}

	chain, err := h.store.Chain(symbol)
	if err != nil {
		response.Error(w, http.StatusNotFound, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"chain": chain,
		"dte":   chain.DTE(h.now()),
	})
}
