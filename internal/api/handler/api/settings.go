// internal/api/handler/api/settings.go
package api

import (
	"encoding/json"
	"net/http"

	"github.com/openquant/vega/internal/api/response"
	"github.com/openquant/vega/internal/core"
	"github.com/openquant/vega/internal/market"
)

// SettingsHandler mutates dashboard runtime settings: the signal
// confidence threshold and the system on/off toggle.
type SettingsHandler struct {
	store *market.Store
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(store *market.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

type settingsRequest struct {
	ConfidenceThreshold *float64 `json:"confidence_threshold"`
	SystemActive        *bool    `json:"system_active"`
}

// Update applies the submitted settings. GET returns the current values.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.current(w)
		return
	case http.MethodPost, http.MethodPut:
	default:
		w.Header().Set("Allow", "GET, POST, PUT")
		response.Error(w, http.StatusMethodNotAllowed, core.ErrBadRequest)
		return
	}

	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, core.WrapError(core.ErrBadRequest, err))
		return
	}

	if req.ConfidenceThreshold != nil {
		if err := h.store.SetConfidenceThreshold(*req.ConfidenceThreshold); err != nil {
			response.Error(w, http.StatusBadRequest, err)
			return
		}
	}
	if req.SystemActive != nil {
		h.store.SetSystemActive(*req.SystemActive)
	}

	h.current(w)
}

func (h *SettingsHandler) current(w http.ResponseWriter) {
	response.JSON(w, http.StatusOK, map[string]any{
		"confidence_threshold": h.store.ConfidenceThreshold(),
		"system_active":        h.store.SystemActive(),
		"selected_symbol":      h.store.SelectedSymbol(),
	})
}
