package web

import (
	"net/http"
)

// AssistantData holds data for the assistant panel.
type AssistantData struct {
	Provider string
}

// Assistant renders the AI assistant chat panel. Questions are posted to
// /api/assistant from the page.
func (h *Handler) Assistant(w http.ResponseWriter, r *http.Request) {
	data := AssistantData{Provider: h.assistantName}

	h.render(w, "assistant.html", "assistant", "AI Assistant", data)
}
