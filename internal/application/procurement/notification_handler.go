package procurement

import (
	"context"
	"fmt"

	"github.com/umitgh/procurement-system/internal/domain/identity"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
	"github.com/umitgh/procurement-system/internal/domain/shared"
	"github.com/umitgh/procurement-system/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// Notification kinds used for metrics labeling
const (
	NotificationApprovalNeeded   = "approval_needed"
	NotificationApproved         = "approved"
	NotificationRejected         = "rejected"
	NotificationSupplierDispatch = "supplier_dispatch"
)

// ApprovalNotificationHandler e-mails approvers when their level becomes
// actionable and the creator when the order is decided. Send failures are
// logged and never fail the event.
type ApprovalNotificationHandler struct {
	loader          *OrderContextLoader
	users           identity.UserRepository
	notifier        Notifier
	businessMetrics *telemetry.BusinessMetrics
	logger          *zap.Logger
}

// NewApprovalNotificationHandler creates a new ApprovalNotificationHandler
func NewApprovalNotificationHandler(
	loader *OrderContextLoader,
	users identity.UserRepository,
	notifier Notifier,
	logger *zap.Logger,
) *ApprovalNotificationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApprovalNotificationHandler{
		loader:   loader,
		users:    users,
		notifier: notifier,
		logger:   logger,
	}
}

// WithBusinessMetrics sets the business metrics collector
func (h *ApprovalNotificationHandler) WithBusinessMetrics(bm *telemetry.BusinessMetrics) *ApprovalNotificationHandler {
	h.businessMetrics = bm
	return h
}

// HandlerName scopes the handler's idempotency keys
func (h *ApprovalNotificationHandler) HandlerName() string {
	return "approval-notification"
}

// EventTypes returns the event types this handler is interested in
func (h *ApprovalNotificationHandler) EventTypes() []string {
	return []string{
		procurement.EventTypeApprovalRequested,
		procurement.EventTypePurchaseOrderApproved,
		procurement.EventTypePurchaseOrderRejected,
	}
}

// Handle dispatches on the concrete event type
func (h *ApprovalNotificationHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *procurement.ApprovalRequestedEvent:
		h.handleApprovalRequested(ctx, e)
	case *procurement.PurchaseOrderApprovedEvent:
		h.handleApproved(ctx, e)
	case *procurement.PurchaseOrderRejectedEvent:
		h.handleRejected(ctx, e)
	default:
		h.logger.Error("unexpected event type",
			zap.Strings("expected", h.EventTypes()),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: %s", event.EventType())
	}
	return nil
}

func (h *ApprovalNotificationHandler) handleApprovalRequested(ctx context.Context, e *procurement.ApprovalRequestedEvent) {
	oc, err := h.loader.load(ctx, e.OrderID)
	if err != nil {
		h.logFailure("Failed to load purchase order for approval notice", e, err)
		return
	}
	approvers, err := h.users.FindByIDs(ctx, e.ApproverIDs)
	if err != nil {
		h.logFailure("Failed to load approvers", e, err)
		return
	}

	brief := oc.brief(e.Level)
	for _, approver := range approvers {
		err := h.notifier.NotifyApprovalNeeded(ctx, approver, brief)
		h.record(ctx, NotificationApprovalNeeded, err)
		if err != nil {
			h.logger.Error("Failed to notify approver",
				zap.String("po_id", e.OrderID.String()),
				zap.String("event_id", e.EventID().String()),
				zap.String("approver_id", approver.ID.String()),
				zap.Int("level", e.Level),
				zap.Error(err),
			)
		}
	}
}

func (h *ApprovalNotificationHandler) handleApproved(ctx context.Context, e *procurement.PurchaseOrderApprovedEvent) {
	if e.AutoApproved {
		// the creator got the outcome synchronously on submit
		return
	}
	oc, err := h.loader.load(ctx, e.OrderID)
	if err != nil {
		h.logFailure("Failed to load purchase order for approval notice", e, err)
		return
	}
	err = h.notifier.NotifyApproved(ctx, oc.creator, oc.brief(0))
	h.record(ctx, NotificationApproved, err)
	if err != nil {
		h.logFailure("Failed to notify creator of approval", e, err)
	}
}

func (h *ApprovalNotificationHandler) handleRejected(ctx context.Context, e *procurement.PurchaseOrderRejectedEvent) {
	oc, err := h.loader.load(ctx, e.OrderID)
	if err != nil {
		h.logFailure("Failed to load purchase order for rejection notice", e, err)
		return
	}
	err = h.notifier.NotifyRejected(ctx, oc.creator, oc.brief(0), e.Reason)
	h.record(ctx, NotificationRejected, err)
	if err != nil {
		h.logFailure("Failed to notify creator of rejection", e, err)
	}
}

func (h *ApprovalNotificationHandler) record(ctx context.Context, kind string, err error) {
	if h.businessMetrics == nil {
		return
	}
	status := telemetry.NotificationStatusSuccess
	if err != nil {
		status = telemetry.NotificationStatusFailed
	}
	h.businessMetrics.RecordNotification(ctx, kind, status)
}

func (h *ApprovalNotificationHandler) logFailure(msg string, e shared.DomainEvent, err error) {
	h.logger.Error(msg,
		zap.String("po_id", e.AggregateID().String()),
		zap.String("event_id", e.EventID().String()),
		zap.String("event_type", e.EventType()),
		zap.Error(err),
	)
}

// Ensure ApprovalNotificationHandler implements shared.EventHandler
var _ shared.EventHandler = (*ApprovalNotificationHandler)(nil)
