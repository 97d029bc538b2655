package web

import (
	"net/http"

	"github.com/openquant/vega/internal/core"
)

// MarketData holds data for the market data panel.
type MarketData struct {
	Quotes     []core.Quote
	Volatility core.VolatilitySnapshot
}

// Market renders the full quote table and the volatility snapshot.
func (h *Handler) Market(w http.ResponseWriter, r *http.Request) {
	data := MarketData{
		Quotes:     h.store.Quotes(),
		Volatility: h.store.Volatility(),
	}

	h.render(w, "market.html", "market", "Market Data", data)
}
