// internal/api/handler/api/quotes.go
package api

import (
	"net/http"
	"strings"

	"github.com/openquant/vega/internal/api/response"
	"github.com/openquant/vega/internal/market"
)

// QuotesHandler handles quote and volatility API requests.
type QuotesHandler struct {
	store *market.Store
}

// NewQuotesHandler creates a new quotes handler.
func NewQuotesHandler(store *market.Store) *QuotesHandler {
	return &QuotesHandler{store: store}
}

// List returns all tracked quotes plus the volatility snapshot.
func (h *QuotesHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]any{
		"quotes":     h.store.Quotes(),
		"volatility": h.store.Volatility(),
	})
}

// GetBySymbol returns a single quote.
func (h *QuotesHandler) GetBySymbol(w http.ResponseWriter, r *http.Request, symbol string) {
	quote, err := h.store.Quote(strings.ToUpper(symbol))
	if err != nil {
		response.Error(w, http.StatusNotFound, err)
		return
	}

	response.JSON(w, http.StatusOK, quote)
}
