package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openquant/vega/internal/api"
	"github.com/openquant/vega/internal/assistant"
	"github.com/openquant/vega/internal/clock"
	"github.com/openquant/vega/internal/config"
	"github.com/openquant/vega/internal/llm/factory"
	"github.com/openquant/vega/internal/logger"
	"github.com/openquant/vega/internal/market"
	"github.com/openquant/vega/internal/metrics"
	"github.com/openquant/vega/internal/storage/archive"
	sigstore "github.com/openquant/vega/internal/storage/signal"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the VEGA dashboard server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Initialize logger
	log := logger.Must(debug)
	defer log.Sync()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	log.Info("starting VEGA server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	// Seed market data and the signal store
	dataset := market.SampleDataset(time.Now())
	store := market.NewStore(dataset)
	if err := store.SetConfidenceThreshold(cfg.Dashboard.ConfidenceThreshold); err != nil {
		return fmt.Errorf("applying confidence threshold: %w", err)
	}

	signals := sigstore.NewMemoryStore(cfg.Dashboard.SignalCapacity)
	for _, s := range dataset.Signals {
		if err := signals.Save(context.Background(), s); err != nil {
			return fmt.Errorf("seeding signals: %w", err)
		}
	}

	session, err := market.NewSession(cfg.Session.Open, cfg.Session.Close, cfg.Session.Timezone)
	if err != nil {
		return fmt.Errorf("creating trading session: %w", err)
	}

	reg := metrics.NewRegistry()

	// Dashboard clock
	clk := clock.New(cfg.Dashboard.RefreshInterval, log)
	clk.Subscribe(func(time.Time) { reg.RecordClockTick() })
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clk.Start(ctx)
	defer clk.Stop()

	// Snapshot archive
	backend, err := newArchiveBackend(cfg)
	if err != nil {
		return fmt.Errorf("creating archive backend: %w", err)
	}
	exporter := archive.NewExporter(backend, log)

	// Assistant
	provider, err := factory.New(cfg.LLM)
	if err != nil {
		return fmt.Errorf("creating LLM provider: %w", err)
	}
	asst := assistant.New(provider, store, signals, reg, log)

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}

	server, err := api.NewServer(api.Config{
		Host:        cfg.Server.Host,
		Port:        cfg.Server.Port,
		APIKey:      cfg.Server.APIKey,
		MetricsPath: metricsPath,
	}, api.Dependencies{
		Store:         store,
		Signals:       signals,
		Session:       session,
		Clock:         clk,
		Metrics:       reg,
		Assistant:     asst,
		AssistantName: provider.Name(),
		Exporter:      exporter,
	}, log)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	// Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Error("server error", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down VEGA server")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	return server.Shutdown(shutdownCtx)
}

func loadConfig(log *zap.Logger) (*config.Config, error) {
	if cfgFile == "" {
		log.Warn("no config file specified, using defaults")
		return config.Defaults(), nil
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func newArchiveBackend(cfg *config.Config) (archive.Storage, error) {
	switch cfg.Archive.Type {
	case "s3":
		return archive.NewS3(archive.S3Config{
			Bucket:    cfg.Archive.S3.Bucket,
			Endpoint:  cfg.Archive.S3.Endpoint,
			Region:    cfg.Archive.S3.Region,
			AccessKey: cfg.Archive.S3.AccessKey,
			SecretKey: cfg.Archive.S3.SecretKey,
			Prefix:    cfg.Archive.S3.Prefix,
		})
	default:
		return archive.NewLocalFS(cfg.Archive.Path)
	}
}
