package archive

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openquant/vega/internal/core"
	"github.com/openquant/vega/internal/market"
)

// Exporter marshals dashboard snapshots and archives them.
type Exporter struct {
	storage Storage
	logger  *zap.Logger
}

// NewExporter creates an exporter over the given backend.
func NewExporter(storage Storage, logger *zap.Logger) *Exporter {
	return &Exporter{storage: storage, logger: logger}
}

// Export writes the snapshot as JSON and returns the archive path.
// Paths are date-partitioned: snapshots/2006/01/02/<id>.json.
func (e *Exporter) Export(ctx context.Context, snap market.Snapshot) (string, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", core.WrapError(core.ErrExportFailed, err)
	}

	id := uuid.NewString()
	path := fmt.Sprintf("snapshots/%s/%s.json", snap.TakenAt.UTC().Format("2006/01/02"), id)

	if err := e.storage.Write(ctx, path, data); err != nil {
		return "", core.WrapError(core.ErrArchiveFailed, err)
	}

	e.logger.Info("snapshot exported",
		zap.String("path", path),
		zap.Int("bytes", len(data)),
	)
	return path, nil
}
