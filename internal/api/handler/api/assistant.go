// internal/api/handler/api/assistant.go
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/openquant/vega/internal/api/response"
	"github.com/openquant/vega/internal/assistant"
	"github.com/openquant/vega/internal/core"
)

// AssistantHandler exposes the market assistant over HTTP.
type AssistantHandler struct {
	svc *assistant.Service
}

// NewAssistantHandler creates a new assistant handler.
func NewAssistantHandler(svc *assistant.Service) *AssistantHandler {
	return &AssistantHandler{svc: svc}
}

type assistantRequest struct {
	Question string `json:"question"`
}

// Ask answers a free-form question about the current market state.
func (h *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		response.Error(w, http.StatusMethodNotAllowed, core.ErrBadRequest)
		return
	}

	var req assistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, core.WrapError(core.ErrBadRequest, err))
		return
	}

	answer, err := h.svc.Ask(r.Context(), req.Question)
	if err != nil {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, core.ErrBadRequest):
			status = http.StatusBadRequest
		case errors.Is(err, core.ErrLLMTimeout):
			status = http.StatusGatewayTimeout
		}
		response.Error(w, status, err)
		return
	}

	response.JSON(w, http.StatusOK, answer)
}
