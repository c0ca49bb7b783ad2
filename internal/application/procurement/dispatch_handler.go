package procurement

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/umitgh/procurement-system/internal/domain/identity"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
	"github.com/umitgh/procurement-system/internal/domain/shared"
	"github.com/umitgh/procurement-system/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// DispatchKey is the idempotency key guarding an order's supplier dispatch
func DispatchKey(orderID uuid.UUID) string {
	return "purchase-order-dispatch:" + orderID.String()
}

// SupplierDispatchHandler renders the approved order as a PDF, stores it and
// e-mails it to the supplier. Each step failing is logged. When no PDF can be
// rendered the order e-mail still goes out, without the attachment.
type SupplierDispatchHandler struct {
	loader          *OrderContextLoader
	approvals       procurement.ApprovalRepository
	users           identity.UserRepository
	renderer        DocumentRenderer
	store           DocumentStore
	notifier        Notifier
	businessMetrics *telemetry.BusinessMetrics
	logger          *zap.Logger
}

// NewSupplierDispatchHandler creates a new SupplierDispatchHandler. store
// may be nil, in which case the PDF is only e-mailed.
func NewSupplierDispatchHandler(
	loader *OrderContextLoader,
	approvals procurement.ApprovalRepository,
	users identity.UserRepository,
	renderer DocumentRenderer,
	store DocumentStore,
	notifier Notifier,
	logger *zap.Logger,
) *SupplierDispatchHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SupplierDispatchHandler{
		loader:    loader,
		approvals: approvals,
		users:     users,
		renderer:  renderer,
		store:     store,
		notifier:  notifier,
		logger:    logger,
	}
}

// WithBusinessMetrics sets the business metrics collector
func (h *SupplierDispatchHandler) WithBusinessMetrics(bm *telemetry.BusinessMetrics) *SupplierDispatchHandler {
	h.businessMetrics = bm
	return h
}

// EventTypes returns the event types this handler is interested in
func (h *SupplierDispatchHandler) EventTypes() []string {
	return []string{procurement.EventTypePurchaseOrderApproved}
}

// HandlerName scopes the handler's idempotency keys
func (h *SupplierDispatchHandler) HandlerName() string {
	return "supplier-dispatch"
}

// IdempotencyKey claims one dispatch per order, whichever delivery of the
// approval event arrives first
func (h *SupplierDispatchHandler) IdempotencyKey(event shared.DomainEvent) string {
	if approved, ok := event.(*procurement.PurchaseOrderApprovedEvent); ok {
		return DispatchKey(approved.OrderID)
	}
	return event.EventType() + ":" + event.EventID().String()
}

// Handle processes a PurchaseOrderApprovedEvent
func (h *SupplierDispatchHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	approved, ok := event.(*procurement.PurchaseOrderApprovedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", procurement.EventTypePurchaseOrderApproved),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			procurement.EventTypePurchaseOrderApproved, event.EventType())
	}

	log := h.logger.With(
		zap.String("po_id", approved.OrderID.String()),
		zap.String("po_number", approved.PONumber),
		zap.String("event_id", approved.EventID().String()),
	)

	oc, err := h.loader.load(ctx, approved.OrderID)
	if err != nil {
		log.Error("Failed to load approved purchase order", zap.Error(err))
		return nil
	}

	pdf := h.render(ctx, oc, log)
	if len(pdf) > 0 && h.store != nil {
		key := DocumentKey(oc.order.PONumber)
		if err := h.store.Upload(ctx, key, pdf, "application/pdf"); err != nil {
			log.Error("Failed to store purchase order PDF", zap.String("storage_key", key), zap.Error(err))
		} else {
			log.Info("Purchase order PDF stored", zap.String("storage_key", key), zap.Int("size", len(pdf)))
		}
	}

	err = h.notifier.SendPurchaseOrderToSupplier(ctx, oc.supplier, oc.brief(0), pdf)
	if h.businessMetrics != nil {
		status := telemetry.NotificationStatusSuccess
		if err != nil {
			status = telemetry.NotificationStatusFailed
		}
		h.businessMetrics.RecordNotification(ctx, NotificationSupplierDispatch, status)
	}
	if err != nil {
		log.Error("Failed to send purchase order to supplier",
			zap.String("supplier_id", oc.supplier.ID.String()),
			zap.Error(err),
		)
		return nil
	}

	log.Info("Purchase order dispatched to supplier",
		zap.String("supplier_email", oc.supplier.Email),
		zap.Bool("pdf_attached", len(pdf) > 0),
	)
	return nil
}

// render returns the order PDF, or nil when it cannot be produced
func (h *SupplierDispatchHandler) render(ctx context.Context, oc *orderContext, log *zap.Logger) []byte {
	doc, err := h.buildDocument(ctx, oc)
	if err != nil {
		log.Error("Failed to assemble purchase order document", zap.Error(err))
		return nil
	}
	pdf, err := h.renderer.RenderPurchaseOrder(ctx, doc)
	if err != nil {
		log.Error("Failed to render purchase order PDF, sending without attachment", zap.Error(err))
		return nil
	}
	return pdf
}

func (h *SupplierDispatchHandler) buildDocument(ctx context.Context, oc *orderContext) (*PurchaseOrderDocument, error) {
	approvals, err := h.approvals.FindByPurchaseOrder(ctx, oc.order.ID)
	if err != nil {
		return nil, err
	}
	approvers := make(map[uuid.UUID]*identity.User, len(approvals))
	if len(approvals) > 0 {
		ids := make([]uuid.UUID, len(approvals))
		for i, a := range approvals {
			ids[i] = a.ApproverID
		}
		users, err := h.users.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			approvers[u.ID] = u
		}
	}
	return BuildPurchaseOrderDocument(oc.order, oc.supplier, oc.company, oc.creator, approvals, approvers), nil
}

// Ensure SupplierDispatchHandler implements shared.EventHandler
var _ shared.EventHandler = (*SupplierDispatchHandler)(nil)
