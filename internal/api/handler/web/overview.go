package web

import (
	"net/http"

	"github.com/openquant/vega/internal/core"
	"github.com/openquant/vega/internal/storage/signal"
)

// OverviewData holds data for the overview panel.
type OverviewData struct {
	Quotes     []core.Quote
	Volatility core.VolatilitySnapshot
	Signals    []core.Signal
}

// Overview renders the overview panel: quote cards, the volatility
// snapshot, the performance chart and the recent signal list.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	// ServeMux routes all unknown paths to "/"; only render the panel
	// for the exact root path.
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	sigs, err := h.signals.List(r.Context(), signal.ListFilter{Limit: 4})
	if err != nil {
		sigs = nil
	}

	data := OverviewData{
		Quotes:     h.store.Quotes(),
		Volatility: h.store.Volatility(),
		Signals:    sigs,
	}

	h.render(w, "overview.html", "overview", "Overview", data)
}
