package web

import (
	"net/http"

	"github.com/openquant/vega/internal/core"
)

// OptionsData holds data for the options chain panel.
type OptionsData struct {
	Symbols  []string
	Selected string
	Chain    core.OptionChain
	DTE      int
}

// Options renders the options chain for the selected symbol. A ?symbol=
// query switches the selection before rendering.
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	if sym := r.URL.Query().Get("symbol"); sym != "" {
		if err := h.store.SetSelectedSymbol(sym); err != nil {
			http.NotFound(w, r)
			return
		}
	}

	selected := h.store.SelectedSymbol()
	chain, err := h.store.Chain(selected)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	data := OptionsData{
		Symbols:  h.store.Symbols(),
		Selected: selected,
		Chain:    chain,
		DTE:      chain.DTE(h.clock.Now()),
	}

	h.render(w, "options.html", "options", "Options", data)
}
