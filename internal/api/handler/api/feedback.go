// internal/api/handler/api/feedback.go
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openquant/vega/internal/api/response"
	"github.com/openquant/vega/internal/core"
	"github.com/openquant/vega/internal/metrics"
)

// FeedbackHandler records user feedback on signals. Votes are logged and
// counted; nothing is persisted beyond the metrics.
type FeedbackHandler struct {
	metrics *metrics.Registry
	logger  *zap.Logger
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(reg *metrics.Registry, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{metrics: reg, logger: logger}
}

type feedbackRequest struct {
	Helpful  *bool  `json:"helpful"`
	Message  string `json:"message"`
	SignalID string `json:"signal_id"`
}

// Submit accepts a feedback vote and returns a receipt ID.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		response.Error(w, http.StatusMethodNotAllowed, core.ErrBadRequest)
		return
	}

	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, core.WrapError(core.ErrFeedbackInvalid, err))
		return
	}

	if req.Helpful == nil && strings.TrimSpace(req.Message) == "" {
		response.Error(w, http.StatusBadRequest, core.ErrFeedbackInvalid)
		return
	}

	helpful := req.Helpful != nil && *req.Helpful
	if req.Helpful != nil {
		h.metrics.RecordFeedback(helpful)
	}

	id := uuid.NewString()
	h.logger.Info("feedback received",
		zap.String("id", id),
		zap.Bool("helpful", helpful),
		zap.String("signal_id", req.SignalID),
		zap.String("message", req.Message))

	response.JSON(w, http.StatusAccepted, map[string]any{
		"id":       id,
		"recorded": true,
	})
}
