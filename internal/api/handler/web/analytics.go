package web

import (
	"net/http"

	"github.com/openquant/vega/internal/analytics"
)

// AnalyticsData holds data for the analytics panel.
type AnalyticsData struct {
	Summary analytics.Summary
	Days    int
}

// Analytics renders the performance statistics over the portfolio series.
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	points := h.store.Performance()

	data := AnalyticsData{
		Summary: analytics.Summarize(points),
		Days:    len(points),
	}

	h.render(w, "analytics.html", "analytics", "Analytics", data)
}
