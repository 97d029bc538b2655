// Package web renders the dashboard's server-side HTML panels.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"go.uber.org/zap"

	"github.com/openquant/vega/internal/clock"
	"github.com/openquant/vega/internal/format"
	"github.com/openquant/vega/internal/market"
	"github.com/openquant/vega/internal/metrics"
	"github.com/openquant/vega/internal/storage/signal"
)

//go:embed templates/*
var templateFS embed.FS

// Tab identifies one dashboard panel.
type Tab struct {
	ID    string
	Title string
	Path  string
}

// Tabs is the fixed navigation set. Each path renders exactly one panel.
var Tabs = []Tab{
	{ID: "overview", Title: "Overview", Path: "/"},
	{ID: "signals", Title: "Signals", Path: "/signals"},
	{ID: "strategies", Title: "Strategies", Path: "/strategies"},
	{ID: "options", Title: "Options", Path: "/options"},
	{ID: "market", Title: "Market Data", Path: "/market"},
	{ID: "analytics", Title: "Analytics", Path: "/analytics"},
	{ID: "assistant", Title: "AI Assistant", Path: "/assistant"},
}

// Deps carries everything the panels read from.
type Deps struct {
	Store         *market.Store
	Signals       signal.Store
	Session       *market.Session
	Clock         *clock.Clock
	Metrics       *metrics.Registry
	Logger        *zap.Logger
	AssistantName string
	// APIKey is handed to rendered pages so their scripts can call the
	// authenticated JSON endpoints. Empty when auth is disabled.
	APIKey string
}

// Handler provides web UI handlers with template rendering.
type Handler struct {
	// pageTemplates holds separate template instances for each page,
	// each containing layout.html + the page template.
	pageTemplates map[string]*template.Template

	store         *market.Store
	signals       signal.Store
	session       *market.Session
	clock         *clock.Clock
	metrics       *metrics.Registry
	logger        *zap.Logger
	assistantName string
	apiKey        string
}

// pages lists the page templates (excluding layout.html).
var pages = []string{
	"overview.html", "signals.html", "strategies.html", "options.html",
	"market.html", "analytics.html", "assistant.html",
}

// funcMap exposes the formatting helpers to the templates.
var funcMap = template.FuncMap{
	"currency":     format.Currency,
	"percent":      format.Percent,
	"volume":       format.Volume,
	"confidence":   format.Confidence,
	"changeClass":  format.ChangeClass,
	"badgeVariant": format.BadgeVariant,
	"iv":           format.ImpliedVol,
}

// NewHandler creates a web handler from the embedded templates.
func NewHandler(deps Deps) (*Handler, error) {
	subFS, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("accessing embedded templates: %w", err)
	}
	return NewHandlerWithFS(subFS, deps)
}

// NewHandlerWithFS creates a web handler using a custom filesystem.
// This is useful for testing or custom template sources.
func NewHandlerWithFS(fsys fs.FS, deps Deps) (*Handler, error) {
	pageTemplates := make(map[string]*template.Template)

	for _, page := range pages {
		tmpl, err := template.New("layout.html").Funcs(funcMap).ParseFS(fsys, "layout.html", page)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		pageTemplates[page] = tmpl
	}

	assistantName := deps.AssistantName
	if assistantName == "" {
		assistantName = "canned"
	}

	return &Handler{
		pageTemplates: pageTemplates,
		store:         deps.Store,
		signals:       deps.Signals,
		session:       deps.Session,
		clock:         deps.Clock,
		metrics:       deps.Metrics,
		logger:        deps.Logger,
		assistantName: assistantName,
		apiKey:        deps.APIKey,
	}, nil
}

// page wraps per-panel data with the shell state every layout render needs.
type page struct {
	Title        string
	ActiveTab    string
	Tabs         []Tab
	CurrentTime  string
	SessionOpen  bool
	SystemActive bool
	APIKey       string
	Data         any
}

// render executes the page template inside the layout.
func (h *Handler) render(w http.ResponseWriter, tmplName, tab, title string, data any) {
	tmpl, ok := h.pageTemplates[tmplName]
	if !ok {
		http.Error(w, "template not found: "+tmplName, http.StatusInternalServerError)
		return
	}

	now := h.clock.Now()
	p := page{
		Title:        title,
		ActiveTab:    tab,
		Tabs:         Tabs,
		CurrentTime:  now.Format("15:04:05"),
		SessionOpen:  h.session.IsOpen(now) && h.store.SystemActive(),
		SystemActive: h.store.SystemActive(),
		APIKey:       h.apiKey,
		Data:         data,
	}

	h.metrics.RecordPanelRender(tab)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout.html", p); err != nil {
		h.logger.Error("rendering page", zap.String("page", tmplName), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
