package web

import (
	"net/http"

	"github.com/openquant/vega/internal/core"
)

// StrategiesData holds data for the strategies panel.
type StrategiesData struct {
	Strategies []core.Strategy
	OpenCount  int
	TotalPnL   float64
}

// Strategies renders the strategy book with P&L bounds per position.
func (h *Handler) Strategies(w http.ResponseWriter, r *http.Request) {
	strategies := h.store.Strategies()

	data := StrategiesData{Strategies: strategies}
	for _, s := range strategies {
		if s.Status == core.StrategyOpen {
			data.OpenCount++
		}
		data.TotalPnL += s.PnL
	}

	h.render(w, "strategies.html", "strategies", "Strategies", data)
}
