package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umitgh/procurement-system/internal/domain/shared"
	"github.com/umitgh/procurement-system/internal/infrastructure/config"
	"go.uber.org/zap/zaptest"
)

func TestMemoryDocumentStore(t *testing.T) {
	store := NewMemoryDocumentStore()
	ctx := context.Background()
	key := "purchase-orders/PO-20260115-0001.pdf"

	exists, err := store.ObjectExists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	pdf := []byte("%PDF")
	require.NoError(t, store.Upload(ctx, key, pdf, "application/pdf"))
	pdf[0] = 'X'

	data, contentType, ok := store.Get(key)
	require.True(t, ok)
	assert.Equal(t, "%PDF", string(data))
	assert.Equal(t, "application/pdf", contentType)

	exists, err = store.ObjectExists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	assert.ErrorIs(t, store.Upload(ctx, "", pdf, "application/pdf"), ErrEmptyKey)
}

func TestMemoryDocumentStore_GenerateDownloadURL(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	t.Cleanup(shared.SetClock(shared.FixedClock(now)))

	store := NewMemoryDocumentStore()
	store.BaseURL = "https://files.example.com/"

	url, expiresAt, err := store.GenerateDownloadURL(context.Background(), "purchase-orders/PO-1.pdf", "PO-1.pdf")
	require.NoError(t, err)
	assert.Equal(t, now.Add(15*time.Minute), expiresAt)
	assert.Equal(t, "https://files.example.com/purchase-orders/PO-1.pdf?expires=2026-01-15T09%3A15%3A00Z&filename=PO-1.pdf", url)
}

func TestNewDocumentStore(t *testing.T) {
	ctx := context.Background()
	logger := zaptest.NewLogger(t)

	store, err := NewDocumentStore(ctx, config.StorageConfig{}, logger)
	require.NoError(t, err)
	assert.IsType(t, &MemoryDocumentStore{}, store)

	store, err = NewDocumentStore(ctx, config.StorageConfig{Bucket: "documents", AccessKeyID: "k", SecretAccessKey: "s"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &S3DocumentStore{}, store)

	_, err = NewDocumentStore(ctx, config.StorageConfig{Bucket: "documents", SecretAccessKey: "s"}, logger)
	assert.Error(t, err)
}
