package cache

import (
	"context"
	"fmt"

	"github.com/umitgh/procurement-system/internal/domain/shared"
	"github.com/umitgh/procurement-system/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewIdempotencyStore picks the claim store for cfg. An empty Redis host
// selects the in-memory store. An unreachable Redis is fatal in production
// and falls back to memory elsewhere.
func NewIdempotencyStore(ctx context.Context, cfg config.RedisConfig, production bool, logger *zap.Logger) (shared.IdempotencyStore, error) {
	if cfg.Host == "" {
		logger.Info("Redis not configured, using in-memory idempotency store")
		return NewInMemoryIdempotencyStore(), nil
	}

	store, err := NewRedisIdempotencyStore(ctx, cfg)
	if err == nil {
		logger.Info("Using Redis idempotency store", zap.String("addr", cfg.RedisAddr()))
		return store, nil
	}
	if production {
		return nil, fmt.Errorf("idempotency store: %w", err)
	}

	logger.Warn("Redis unavailable, falling back to in-memory idempotency store; "+
		"dispatch deduplication is per process",
		zap.Error(err))
	return NewInMemoryIdempotencyStore(), nil
}
