package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/umitgh/procurement-system/internal/domain/shared"
)

// Event type constants
const (
	EventTypePurchaseOrderSubmitted = "PurchaseOrderSubmitted"
	EventTypeApprovalRequested      = "ApprovalRequested"
	EventTypeApprovalDecided        = "ApprovalDecided"
	EventTypePurchaseOrderApproved  = "PurchaseOrderApproved"
	EventTypePurchaseOrderRejected  = "PurchaseOrderRejected"
	EventTypePurchaseOrderCancelled = "PurchaseOrderCancelled"
)

// OrderSummary is the order snapshot carried by every event so that
// notification handlers need no extra lookups.
type OrderSummary struct {
	OrderID     uuid.UUID       `json:"order_id"`
	PONumber    string          `json:"po_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedByID uuid.UUID       `json:"created_by_id"`
	SupplierID  uuid.UUID       `json:"supplier_id"`
	CompanyID   uuid.UUID       `json:"company_id"`
}

// Summary builds the event snapshot of an order
func (o *PurchaseOrder) Summary() OrderSummary {
	return OrderSummary{
		OrderID:     o.ID,
		PONumber:    o.PONumber,
		TotalAmount: o.TotalAmount,
		CreatedByID: o.CreatedByID,
		SupplierID:  o.SupplierID,
		CompanyID:   o.CompanyID,
	}
}

// PurchaseOrderSubmittedEvent is raised when a draft enters approval
type PurchaseOrderSubmittedEvent struct {
	shared.BaseDomainEvent
	OrderSummary
	SubmittedAt time.Time `json:"submitted_at"`
}

// NewPurchaseOrderSubmittedEvent creates a new PurchaseOrderSubmittedEvent
func NewPurchaseOrderSubmittedEvent(o *PurchaseOrder) *PurchaseOrderSubmittedEvent {
	return &PurchaseOrderSubmittedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderSubmitted, AggregateTypePurchaseOrder, o.ID),
		OrderSummary:    o.Summary(),
		SubmittedAt:     *o.SubmittedAt,
	}
}

// ApprovalRequestedEvent is raised when an approval level becomes actionable
type ApprovalRequestedEvent struct {
	shared.BaseDomainEvent
	OrderSummary
	Level       int         `json:"level"`
	ApproverIDs []uuid.UUID `json:"approver_ids"`
}

// NewApprovalRequestedEvent creates a new ApprovalRequestedEvent
func NewApprovalRequestedEvent(o *PurchaseOrder, level int, approverIDs []uuid.UUID) *ApprovalRequestedEvent {
	return &ApprovalRequestedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeApprovalRequested, AggregateTypePurchaseOrder, o.ID),
		OrderSummary:    o.Summary(),
		Level:           level,
		ApproverIDs:     approverIDs,
	}
}

// ApprovalDecidedEvent records a single approver's decision
type ApprovalDecidedEvent struct {
	shared.BaseDomainEvent
	OrderSummary
	ApprovalID uuid.UUID      `json:"approval_id"`
	ApproverID uuid.UUID      `json:"approver_id"`
	Level      int            `json:"level"`
	Decision   ApprovalStatus `json:"decision"`
	Comments   string         `json:"comments,omitempty"`
}

// NewApprovalDecidedEvent creates a new ApprovalDecidedEvent
func NewApprovalDecidedEvent(o *PurchaseOrder, a *Approval) *ApprovalDecidedEvent {
	return &ApprovalDecidedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeApprovalDecided, AggregateTypePurchaseOrder, o.ID),
		OrderSummary:    o.Summary(),
		ApprovalID:      a.ID,
		ApproverID:      a.ApproverID,
		Level:           a.Level,
		Decision:        a.Status,
		Comments:        a.Comments,
	}
}

// PurchaseOrderApprovedEvent is raised once, on the final approval
type PurchaseOrderApprovedEvent struct {
	shared.BaseDomainEvent
	OrderSummary
	ApprovedAt   time.Time `json:"approved_at"`
	AutoApproved bool      `json:"auto_approved"`
}

// NewPurchaseOrderApprovedEvent creates a new PurchaseOrderApprovedEvent
func NewPurchaseOrderApprovedEvent(o *PurchaseOrder, autoApproved bool) *PurchaseOrderApprovedEvent {
	return &PurchaseOrderApprovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderApproved, AggregateTypePurchaseOrder, o.ID),
		OrderSummary:    o.Summary(),
		ApprovedAt:      *o.ApprovedAt,
		AutoApproved:    autoApproved,
	}
}

// PurchaseOrderRejectedEvent is raised when any approver rejects
type PurchaseOrderRejectedEvent struct {
	shared.BaseDomainEvent
	OrderSummary
	RejectedByID uuid.UUID `json:"rejected_by_id"`
	Reason       string    `json:"reason,omitempty"`
	RejectedAt   time.Time `json:"rejected_at"`
}

// NewPurchaseOrderRejectedEvent creates a new PurchaseOrderRejectedEvent
func NewPurchaseOrderRejectedEvent(o *PurchaseOrder, rejectedBy uuid.UUID, reason string) *PurchaseOrderRejectedEvent {
	return &PurchaseOrderRejectedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderRejected, AggregateTypePurchaseOrder, o.ID),
		OrderSummary:    o.Summary(),
		RejectedByID:    rejectedBy,
		Reason:          reason,
		RejectedAt:      *o.RejectedAt,
	}
}

// PurchaseOrderCancelledEvent is raised when the creator withdraws an order
type PurchaseOrderCancelledEvent struct {
	shared.BaseDomainEvent
	OrderSummary
	CancelledByID uuid.UUID `json:"cancelled_by_id"`
}

// NewPurchaseOrderCancelledEvent creates a new PurchaseOrderCancelledEvent
func NewPurchaseOrderCancelledEvent(o *PurchaseOrder, by uuid.UUID) *PurchaseOrderCancelledEvent {
	return &PurchaseOrderCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderCancelled, AggregateTypePurchaseOrder, o.ID),
		OrderSummary:    o.Summary(),
		CancelledByID:   by,
	}
}
