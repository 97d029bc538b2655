package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openquant/vega/internal/logger"
	"github.com/openquant/vega/internal/market"
	"github.com/openquant/vega/internal/storage/archive"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a one-shot dashboard snapshot to the archive",
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logger.Must(debug)
	defer log.Sync()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	backend, err := newArchiveBackend(cfg)
	if err != nil {
		return fmt.Errorf("creating archive backend: %w", err)
	}

	now := time.Now()
	dataset := market.SampleDataset(now)
	store := market.NewStore(dataset)

	path, err := archive.NewExporter(backend, log).Export(context.Background(), store.Snapshot(now, dataset.Signals))
	if err != nil {
		return fmt.Errorf("exporting snapshot: %w", err)
	}

	log.Info("snapshot exported", zap.String("path", path))
	fmt.Println(path)
	return nil
}
