package storage

import (
	"context"

	procurementapp "github.com/umitgh/procurement-system/internal/application/procurement"
	"github.com/umitgh/procurement-system/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewDocumentStore returns the S3 store when a bucket is configured and the
// in-memory store otherwise.
func NewDocumentStore(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (procurementapp.DocumentStore, error) {
	if cfg.Bucket == "" {
		logger.Warn("No storage bucket configured, keeping documents in memory")
		return NewMemoryDocumentStore(), nil
	}
	store, err := NewS3DocumentStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Document storage configured",
		zap.String("bucket", cfg.Bucket),
		zap.String("endpoint", cfg.Endpoint),
	)
	return store, nil
}
