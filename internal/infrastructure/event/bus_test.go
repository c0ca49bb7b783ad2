package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
	"github.com/umitgh/procurement-system/internal/domain/shared"
	"go.uber.org/zap"
)

func sampleSummary() procurement.OrderSummary {
	return procurement.OrderSummary{
		OrderID:     uuid.New(),
		PONumber:    "PO-20260312-0001",
		TotalAmount: decimal.NewFromInt(75000),
		CreatedByID: uuid.New(),
		SupplierID:  uuid.New(),
		CompanyID:   uuid.New(),
	}
}

func cancelledEvent() *procurement.PurchaseOrderCancelledEvent {
	summary := sampleSummary()
	return &procurement.PurchaseOrderCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(procurement.EventTypePurchaseOrderCancelled, procurement.AggregateTypePurchaseOrder, summary.OrderID),
		OrderSummary:    summary,
		CancelledByID:   summary.CreatedByID,
	}
}

func requestedEvent(level int, approvers ...uuid.UUID) *procurement.ApprovalRequestedEvent {
	summary := sampleSummary()
	return &procurement.ApprovalRequestedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(procurement.EventTypeApprovalRequested, procurement.AggregateTypePurchaseOrder, summary.OrderID),
		OrderSummary:    summary,
		Level:           level,
		ApproverIDs:     approvers,
	}
}

type recordingHandler struct {
	mu      sync.Mutex
	types   []string
	handled []shared.DomainEvent
	err     error
	panics  bool
}

func newRecordingHandler(types ...string) *recordingHandler {
	return &recordingHandler{types: types}
}

func (h *recordingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handled = append(h.handled, event)
	if h.panics {
		panic("boom")
	}
	return h.err
}

func (h *recordingHandler) EventTypes() []string { return h.types }

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.handled)
}

func TestInMemoryEventBus_DeliversToSubscribedTypes(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	onCancel := newRecordingHandler(procurement.EventTypePurchaseOrderCancelled)
	onRequest := newRecordingHandler(procurement.EventTypeApprovalRequested)
	bus.Subscribe(onCancel)
	bus.Subscribe(onRequest)

	cancelled := cancelledEvent()
	require.NoError(t, bus.Publish(context.Background(), cancelled, requestedEvent(1, uuid.New()), requestedEvent(2, uuid.New())))

	assert.Equal(t, 1, onCancel.count())
	assert.Same(t, cancelled, onCancel.handled[0])
	assert.Equal(t, 2, onRequest.count())
}

func TestInMemoryEventBus_ExplicitTypesOverrideDeclared(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	h := newRecordingHandler(procurement.EventTypeApprovalRequested)
	bus.Subscribe(h, procurement.EventTypePurchaseOrderCancelled)

	require.NoError(t, bus.Publish(context.Background(), requestedEvent(1), cancelledEvent()))

	assert.Equal(t, 1, h.count())
	assert.Equal(t, procurement.EventTypePurchaseOrderCancelled, h.handled[0].EventType())
}

func TestInMemoryEventBus_FailingHandlersDoNotStopDelivery(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	failing := newRecordingHandler(procurement.EventTypePurchaseOrderCancelled)
	failing.err = errors.New("smtp unavailable")
	panicking := newRecordingHandler(procurement.EventTypePurchaseOrderCancelled)
	panicking.panics = true
	healthy := newRecordingHandler(procurement.EventTypePurchaseOrderCancelled)
	bus.Subscribe(failing)
	bus.Subscribe(panicking)
	bus.Subscribe(healthy)

	err := bus.Publish(context.Background(), cancelledEvent())

	require.NoError(t, err)
	assert.Equal(t, 1, failing.count())
	assert.Equal(t, 1, panicking.count())
	assert.Equal(t, 1, healthy.count())
	assert.Equal(t, int64(2), bus.HandlerFailures())
}

func TestInMemoryEventBus_CatchAllHandler(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	audit := newRecordingHandler()
	bus.Subscribe(audit)

	require.NoError(t, bus.Publish(context.Background(), cancelledEvent(), requestedEvent(1)))

	assert.Equal(t, 2, audit.count())
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	h := newRecordingHandler(procurement.EventTypePurchaseOrderCancelled)
	bus.Subscribe(h)

	require.NoError(t, bus.Publish(context.Background(), cancelledEvent()))
	bus.Unsubscribe(h)
	require.NoError(t, bus.Publish(context.Background(), cancelledEvent()))

	assert.Equal(t, 1, h.count())
}

func TestInMemoryEventBus_StartStop(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	ctx := context.Background()

	assert.False(t, bus.IsRunning())
	require.NoError(t, bus.Start(ctx))
	assert.True(t, bus.IsRunning())
	require.NoError(t, bus.Stop(ctx))
	assert.False(t, bus.IsRunning())
}
