// internal/api/server.go
package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihandler "github.com/openquant/vega/internal/api/handler/api"
	"github.com/openquant/vega/internal/api/handler/web"
	"github.com/openquant/vega/internal/api/middleware"
	"github.com/openquant/vega/internal/assistant"
	"github.com/openquant/vega/internal/clock"
	"github.com/openquant/vega/internal/market"
	"github.com/openquant/vega/internal/metrics"
	"github.com/openquant/vega/internal/storage/archive"
	"github.com/openquant/vega/internal/storage/signal"
)

// Server is the dashboard HTTP server: server-rendered panels plus the
// JSON API the pages poll.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	mux        *http.ServeMux
}

// Config holds server configuration.
type Config struct {
	Host        string
	Port        int
	APIKey      string
	MetricsPath string // empty disables the metrics endpoint
}

// Dependencies carries the wired application services.
type Dependencies struct {
	Store         *market.Store
	Signals       signal.Store
	Session       *market.Session
	Clock         *clock.Clock
	Metrics       *metrics.Registry
	Assistant     *assistant.Service
	AssistantName string
	Exporter      *archive.Exporter
}

// NewServer creates a new HTTP server.
func NewServer(cfg Config, deps Dependencies, logger *zap.Logger) (*Server, error) {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      metrics.HTTPMiddleware(deps.Metrics)(mux),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
		mux:    mux,
	}

	if err := s.setupRoutes(cfg, deps); err != nil {
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	return s, nil
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes(cfg Config, deps Dependencies) error {
	// Web UI routes
	webHandler, err := web.NewHandler(web.Deps{
		Store:         deps.Store,
		Signals:       deps.Signals,
		Session:       deps.Session,
		Clock:         deps.Clock,
		Metrics:       deps.Metrics,
		Logger:        s.logger,
		AssistantName: deps.AssistantName,
		APIKey:        cfg.APIKey,
	})
	if err != nil {
		return fmt.Errorf("creating web handler: %w", err)
	}

	s.mux.HandleFunc("/", webHandler.Overview)
	s.mux.HandleFunc("/signals", webHandler.Signals)
	s.mux.HandleFunc("/strategies", webHandler.Strategies)
	s.mux.HandleFunc("/options", webHandler.Options)
	s.mux.HandleFunc("/market", webHandler.Market)
	s.mux.HandleFunc("/analytics", webHandler.Analytics)
	s.mux.HandleFunc("/assistant", webHandler.Assistant)

	// JSON API routes
	quotes := apihandler.NewQuotesHandler(deps.Store)
	signals := apihandler.NewSignalsHandler(deps.Signals, deps.Metrics)
	options := apihandler.NewOptionsHandler(deps.Store, deps.Clock.Now)
	performance := apihandler.NewPerformanceHandler(deps.Store)
	feedback := apihandler.NewFeedbackHandler(deps.Metrics, s.logger)
	settings := apihandler.NewSettingsHandler(deps.Store)
	timeHandler := apihandler.NewTimeHandler(deps.Clock, deps.Session, deps.Store)

	auth := middleware.APIKeyAuth(cfg.APIKey)

	s.mux.Handle("/api/quotes", auth(http.HandlerFunc(quotes.List)))
	s.mux.Handle("/api/quotes/", auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		symbol := strings.TrimPrefix(r.URL.Path, "/api/quotes/")
		quotes.GetBySymbol(w, r, symbol)
	})))
	s.mux.Handle("/api/signals", auth(http.HandlerFunc(signals.List)))
	s.mux.Handle("/api/signals/", auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/signals/")
		signals.GetByID(w, r, id)
	})))
	s.mux.Handle("/api/options", auth(http.HandlerFunc(options.Chain)))
	s.mux.Handle("/api/performance", auth(http.HandlerFunc(performance.Series)))
	s.mux.Handle("/api/feedback", auth(http.HandlerFunc(feedback.Submit)))
	s.mux.Handle("/api/settings", auth(http.HandlerFunc(settings.Update)))

	if deps.Assistant != nil {
		assistantHandler := apihandler.NewAssistantHandler(deps.Assistant)
		s.mux.Handle("/api/assistant", auth(http.HandlerFunc(assistantHandler.Ask)))
	}
	if deps.Exporter != nil {
		export := apihandler.NewExportHandler(deps.Store, deps.Signals, deps.Exporter, deps.Metrics, deps.Clock.Now)
		s.mux.Handle("/api/export", auth(http.HandlerFunc(export.Trigger)))
	}

	// Polled by every page once per second; stays unauthenticated.
	s.mux.HandleFunc("/api/time", timeHandler.Now)
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if cfg.MetricsPath != "" {
		s.mux.Handle(cfg.MetricsPath, promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{}))
	}

	return nil
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
