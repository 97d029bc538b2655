// internal/api/handler/api/time.go
package api

import (
	"net/http"

	"github.com/openquant/vega/internal/api/response"
	"github.com/openquant/vega/internal/clock"
	"github.com/openquant/vega/internal/market"
)

// TimeHandler serves the header clock poll.
type TimeHandler struct {
	clock   *clock.Clock
	session *market.Session
	store   *market.Store
}

// NewTimeHandler creates a new time handler.
func NewTimeHandler(c *clock.Clock, session *market.Session, store *market.Store) *TimeHandler {
	return &TimeHandler{clock: c, session: session, store: store}
}

// Now returns the current server time and whether the trading session is
// open. The page polls this once per second to drive the header clock.
func (h *TimeHandler) Now(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()

	response.JSON(w, http.StatusOK, map[string]any{
		"time":         now.Format("15:04:05"),
		"session_open": h.session.IsOpen(now) && h.store.SystemActive(),
	})
}
