package web

import (
	"net/http"

	"github.com/openquant/vega/internal/core"
	"github.com/openquant/vega/internal/storage/signal"
)

// SignalsData holds data for the signals panel.
type SignalsData struct {
	Signals   []core.Signal
	Threshold float64
}

// Signals renders the signal feed filtered by the confidence threshold.
func (h *Handler) Signals(w http.ResponseWriter, r *http.Request) {
	threshold := h.store.ConfidenceThreshold()

	sigs, err := h.signals.List(r.Context(), signal.ListFilter{
		MinConfidence: threshold,
		Limit:         50,
	})
	if err != nil {
		sigs = nil
	}

	data := SignalsData{
		Signals:   sigs,
		Threshold: threshold,
	}

	h.render(w, "signals.html", "signals", "Signals", data)
}
