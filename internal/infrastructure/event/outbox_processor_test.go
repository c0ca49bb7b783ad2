package event

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
	"github.com/umitgh/procurement-system/internal/domain/shared"
	"go.uber.org/zap"
)

type processorFixture struct {
	repo       *GormOutboxRepository
	serializer *EventSerializer
	bus        *InMemoryEventBus
	processor  *OutboxProcessor
}

func newProcessorFixture(t *testing.T) *processorFixture {
	db := setupOutboxDB(t)
	f := &processorFixture{
		repo:       NewGormOutboxRepository(db),
		serializer: NewEventSerializer(),
		bus:        NewInMemoryEventBus(zap.NewNop()),
	}
	f.processor = NewOutboxProcessor(f.repo, f.bus, f.serializer, DefaultOutboxProcessorConfig(), zap.NewNop())
	return f
}

func TestOutboxProcessor_DeliversPendingEntries(t *testing.T) {
	f := newProcessorFixture(t)
	RegisterAllEvents(f.serializer)
	handler := newRecordingHandler(procurement.EventTypeApprovalRequested)
	f.bus.Subscribe(handler)
	ctx := context.Background()

	original := requestedEvent(1)
	entry := pendingEntry(t, original)
	require.NoError(t, f.repo.Save(ctx, entry))

	f.processor.ProcessBatch(ctx)

	require.Equal(t, 1, handler.count())
	delivered := handler.handled[0].(*procurement.ApprovalRequestedEvent)
	assert.Equal(t, original.EventID(), delivered.EventID())
	assert.Equal(t, original.PONumber, delivered.PONumber)

	stored, err := f.repo.FindByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, shared.OutboxStatusSent, stored.Status)
	assert.NotNil(t, stored.ProcessedAt)
	assert.Equal(t, int64(1), f.processor.Delivered())

	f.processor.ProcessBatch(ctx)
	assert.Equal(t, 1, handler.count())
}

func TestOutboxProcessor_UnknownTypeIsRetriedAfterBackoff(t *testing.T) {
	f := newProcessorFixture(t)
	handler := newRecordingHandler(procurement.EventTypePurchaseOrderCancelled)
	f.bus.Subscribe(handler)
	ctx := context.Background()
	now := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)
	restore := shared.SetClock(shared.FixedClock(now))
	defer restore()

	entry := pendingEntry(t, cancelledEvent())
	require.NoError(t, f.repo.Save(ctx, entry))

	f.processor.ProcessBatch(ctx)

	stored, err := f.repo.FindByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, shared.OutboxStatusFailed, stored.Status)
	assert.Equal(t, 1, stored.RetryCount)
	assert.Contains(t, stored.LastError, "unknown event type")
	assert.Zero(t, handler.count())

	RegisterAllEvents(f.serializer)
	shared.SetClock(shared.FixedClock(now.Add(5 * time.Second)))
	f.processor.ProcessBatch(ctx)

	stored, err = f.repo.FindByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, shared.OutboxStatusSent, stored.Status)
	assert.Equal(t, 1, handler.count())
}

func TestOutboxProcessor_StartStop(t *testing.T) {
	f := newProcessorFixture(t)

	require.NoError(t, f.processor.Start(context.Background()))

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, f.processor.Stop(stopCtx))
}

func TestDefaultOutboxProcessorConfig(t *testing.T) {
	cfg := DefaultOutboxProcessorConfig()

	assert.Equal(t, 100, cfg.BatchSize)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.True(t, cfg.CleanupEnabled)
	assert.Equal(t, 7*24*time.Hour, cfg.CleanupRetention)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
}
