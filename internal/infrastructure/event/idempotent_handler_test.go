package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
	"github.com/umitgh/procurement-system/internal/domain/shared"
	"github.com/umitgh/procurement-system/internal/infrastructure/cache"
	"go.uber.org/zap"
)

type MockEventHandler struct {
	mock.Mock
}

func (m *MockEventHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventHandler) EventTypes() []string {
	return m.Called().Get(0).([]string)
}

type MockIdempotencyStore struct {
	mock.Mock
}

func (m *MockIdempotencyStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) IsProcessed(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) Close() error {
	return m.Called().Error(0)
}

func TestIdempotentHandler_SkipsRedelivery(t *testing.T) {
	store := cache.NewInMemoryIdempotencyStore()
	defer store.Close()
	inner := new(MockEventHandler)
	event := cancelledEvent()
	inner.On("Handle", mock.Anything, event).Return(nil).Once()

	h := NewIdempotentHandler(inner, store, zap.NewNop())

	require.NoError(t, h.Handle(context.Background(), event))
	require.NoError(t, h.Handle(context.Background(), event))

	inner.AssertExpectations(t)
	stats := h.GetMetrics().Stats()
	assert.Equal(t, int64(1), stats.EventsProcessed)
	assert.Equal(t, int64(1), stats.EventsDuplicate)
}

func TestIdempotentHandler_DefaultKeyIsEventID(t *testing.T) {
	store := new(MockIdempotencyStore)
	inner := new(MockEventHandler)
	event := cancelledEvent()
	key := procurement.EventTypePurchaseOrderCancelled + ":" + event.EventID().String()
	store.On("MarkProcessed", mock.Anything, key, 24*time.Hour).Return(true, nil)
	inner.On("Handle", mock.Anything, event).Return(nil)

	h := NewIdempotentHandler(inner, store, zap.NewNop())

	require.NoError(t, h.Handle(context.Background(), event))
	store.AssertExpectations(t)
}

func TestIdempotentHandler_CustomKeyCollapsesDistinctEvents(t *testing.T) {
	store := cache.NewInMemoryIdempotencyStore()
	defer store.Close()
	inner := new(MockEventHandler)
	inner.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

	first := cancelledEvent()
	second := cancelledEvent()
	second.AggID = first.AggregateID()

	h := NewIdempotentHandler(inner, store, zap.NewNop(),
		WithIdempotencyKey(func(e shared.DomainEvent) string {
			return "order:" + e.AggregateID().String()
		}),
	)

	require.NoError(t, h.Handle(context.Background(), first))
	require.NoError(t, h.Handle(context.Background(), second))
	inner.AssertExpectations(t)
}

func TestIdempotentHandler_HandlerErrorKeepsKey(t *testing.T) {
	store := cache.NewInMemoryIdempotencyStore()
	defer store.Close()
	inner := new(MockEventHandler)
	event := cancelledEvent()
	inner.On("Handle", mock.Anything, event).Return(errors.New("render failed")).Once()

	h := NewIdempotentHandler(inner, store, zap.NewNop())

	assert.Error(t, h.Handle(context.Background(), event))
	assert.NoError(t, h.Handle(context.Background(), event))
	assert.Equal(t, int64(1), h.GetMetrics().Stats().EventsFailed)
	inner.AssertExpectations(t)
}

func TestIdempotentHandler_StoreFailureStillHandles(t *testing.T) {
	store := new(MockIdempotencyStore)
	inner := new(MockEventHandler)
	event := cancelledEvent()
	store.On("MarkProcessed", mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("redis down"))
	inner.On("Handle", mock.Anything, event).Return(nil).Once()

	h := NewIdempotentHandler(inner, store, zap.NewNop())

	require.NoError(t, h.Handle(context.Background(), event))
	inner.AssertExpectations(t)
}

func TestIdempotentHandler_Disabled(t *testing.T) {
	store := new(MockIdempotencyStore)
	inner := new(MockEventHandler)
	event := cancelledEvent()
	inner.On("Handle", mock.Anything, event).Return(nil).Twice()

	h := NewIdempotentHandler(inner, store, zap.NewNop(),
		WithIdempotencyConfig(shared.IdempotencyConfig{Enabled: false}),
	)

	require.NoError(t, h.Handle(context.Background(), event))
	require.NoError(t, h.Handle(context.Background(), event))
	inner.AssertExpectations(t)
	store.AssertNotCalled(t, "MarkProcessed", mock.Anything, mock.Anything, mock.Anything)
}

func TestWrapHandlersWithIdempotency_SharesMetrics(t *testing.T) {
	store := cache.NewInMemoryIdempotencyStore()
	defer store.Close()
	metrics := &IdempotencyMetrics{}

	a := new(MockEventHandler)
	a.On("EventTypes").Return([]string{procurement.EventTypeApprovalRequested})
	a.On("Handle", mock.Anything, mock.Anything).Return(nil)
	b := new(MockEventHandler)
	b.On("Handle", mock.Anything, mock.Anything).Return(nil)

	wrapped := WrapHandlersWithIdempotency([]shared.EventHandler{a, b}, store, zap.NewNop(), WithIdempotencyMetrics(metrics))
	require.Len(t, wrapped, 2)
	assert.Equal(t, []string{procurement.EventTypeApprovalRequested}, wrapped[0].EventTypes())

	require.NoError(t, wrapped[0].Handle(context.Background(), requestedEvent(1)))
	require.NoError(t, wrapped[1].Handle(context.Background(), requestedEvent(1)))
	assert.Equal(t, int64(2), metrics.Stats().EventsProcessed)
}

func TestIdempotentHandler_ConcurrentDuplicates(t *testing.T) {
	store := cache.NewInMemoryIdempotencyStore()
	defer store.Close()
	inner := new(MockEventHandler)
	event := requestedEvent(1)
	inner.On("Handle", mock.Anything, event).Return(nil).Once()

	h := NewIdempotentHandler(inner, store, zap.NewNop())

	const workers = 32
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() { errs <- h.Handle(context.Background(), event) }()
	}
	for i := 0; i < workers; i++ {
		assert.NoError(t, <-errs)
	}

	inner.AssertExpectations(t)
	assert.Equal(t, int64(workers-1), h.GetMetrics().Stats().EventsDuplicate)
}

type scopedHandler struct {
	*recordingHandler
	name string
}

func (h scopedHandler) HandlerName() string { return h.name }

type orderKeyedHandler struct {
	*recordingHandler
}

func (orderKeyedHandler) IdempotencyKey(e shared.DomainEvent) string {
	return "order:" + e.AggregateID().String()
}

func TestIdempotentHandler_KeyScopes(t *testing.T) {
	store := cache.NewInMemoryIdempotencyStore()
	defer store.Close()
	event := cancelledEvent()
	types := procurement.EventTypePurchaseOrderCancelled

	plain := NewIdempotentHandler(newRecordingHandler(types), store, zap.NewNop())
	assert.Equal(t, EventIDKey(event), plain.Key(event))

	named := NewIdempotentHandler(scopedHandler{newRecordingHandler(types), "notify"}, store, zap.NewNop())
	assert.Equal(t, "notify:"+EventIDKey(event), named.Key(event))

	keyed := NewIdempotentHandler(orderKeyedHandler{newRecordingHandler(types)}, store, zap.NewNop())
	assert.Equal(t, "order:"+event.AggregateID().String(), keyed.Key(event))

	unscoped := NewIdempotentHandler(scopedHandler{newRecordingHandler(types), "notify"}, store, zap.NewNop(),
		WithHandlerName(""))
	assert.Equal(t, EventIDKey(event), unscoped.Key(event))
}

func TestWrapHandlersWithIdempotency_HandlersSharingAnEventEachRunOnce(t *testing.T) {
	store := cache.NewInMemoryIdempotencyStore()
	defer store.Close()
	ctx := context.Background()
	types := procurement.EventTypePurchaseOrderCancelled

	notify := scopedHandler{newRecordingHandler(types), "notify"}
	dispatch := scopedHandler{newRecordingHandler(types), "dispatch"}
	perOrder := orderKeyedHandler{newRecordingHandler(types)}
	unnamed := newRecordingHandler(types)

	bus := NewInMemoryEventBus(zap.NewNop())
	for _, h := range WrapHandlersWithIdempotency(
		[]shared.EventHandler{notify, dispatch, perOrder, unnamed}, store, zap.NewNop()) {
		bus.Subscribe(h)
	}

	first := cancelledEvent()
	require.NoError(t, bus.Publish(ctx, first))
	require.NoError(t, bus.Publish(ctx, first))

	assert.Equal(t, 1, notify.count())
	assert.Equal(t, 1, dispatch.count())
	assert.Equal(t, 1, perOrder.count())
	assert.Equal(t, 1, unnamed.count())

	// a second event for the same order is new to event-id keys only
	second := cancelledEvent()
	second.AggID = first.AggregateID()
	require.NoError(t, bus.Publish(ctx, second))

	assert.Equal(t, 2, notify.count())
	assert.Equal(t, 1, perOrder.count())
}
