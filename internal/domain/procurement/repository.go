package procurement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/umitgh/procurement-system/internal/domain/shared"
)

// PurchaseOrderFilter narrows purchase order listings
type PurchaseOrderFilter struct {
	shared.Filter
	Status      *Status
	SupplierID  *uuid.UUID
	CreatedByID *uuid.UUID
}

// PurchaseOrderRepository defines the interface for purchase order persistence
type PurchaseOrderRepository interface {
	// FindByID loads an order with its items; ErrPurchaseOrderNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)
	FindAll(ctx context.Context, filter PurchaseOrderFilter) ([]*PurchaseOrder, int64, error)
	// LatestNumberWithPrefix returns the highest PO number with prefix, or ""
	LatestNumberWithPrefix(ctx context.Context, prefix string) (string, error)
	// Create inserts a new draft with its items
	Create(ctx context.Context, order *PurchaseOrder) error
	// Update rewrites a draft and its items under an optimistic version check
	Update(ctx context.Context, order *PurchaseOrder) error
	// SaveWithLockAndEvents persists a state change under an optimistic
	// version check and stores the order's events in the same transaction
	SaveWithLockAndEvents(ctx context.Context, order *PurchaseOrder, events []shared.DomainEvent) error
	// Delete removes a draft and its items
	Delete(ctx context.Context, id uuid.UUID) error
}

// DecideFunc computes a decision from state loaded under lock
type DecideFunc func(order *PurchaseOrder, approvals []*Approval) (*DecisionRecord, error)

// ApprovalRepository defines the interface for approval persistence
type ApprovalRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Approval, error)
	FindByPurchaseOrder(ctx context.Context, orderID uuid.UUID) ([]*Approval, error)
	// FindActionableForApprover lists pending approvals of approverID whose
	// order awaits approval and whose lower levels are all approved
	FindActionableForApprover(ctx context.Context, approverID uuid.UUID) ([]*Approval, error)
	CountActionableForApprover(ctx context.Context, approverID uuid.UUID) (int64, error)
	// CreateBatch inserts all approvals of an order atomically along with
	// events. It fails with ErrApprovalsAlreadyInitialized when the order
	// already has approvals.
	CreateBatch(ctx context.Context, orderID uuid.UUID, approvals []*Approval, events []shared.DomainEvent) error
	// Decide loads the approval, its order and all sibling approvals in one
	// transaction holding the order row, runs fn and writes its record. The
	// approval row is updated with a compare-and-set on PENDING.
	Decide(ctx context.Context, approvalID uuid.UUID, fn DecideFunc) (*DecisionRecord, error)
}

// SupplierSpend is an aggregate of approved spend for one supplier
type SupplierSpend struct {
	SupplierID uuid.UUID
	Total      decimal.Decimal
	OrderCount int64
}

// SpendQuery narrows spend aggregations. Nil bounds and a nil creator are
// unrestricted; From is inclusive and To exclusive.
type SpendQuery struct {
	From        *time.Time
	To          *time.Time
	CreatedByID *uuid.UUID
	Limit       int
}

// SpendRepository answers spend aggregation queries over approved orders
type SpendRepository interface {
	// SumApproved totals APPROVED orders of supplierID with from <= approvedAt < to
	SumApproved(ctx context.Context, supplierID uuid.UUID, from, to time.Time) (SupplierSpend, error)
	// SumApprovedBySupplier groups APPROVED orders by supplier, largest first
	SumApprovedBySupplier(ctx context.Context, q SpendQuery) ([]SupplierSpend, error)
	// ApprovedInWindow lists the APPROVED orders with from <= approvedAt < to
	ApprovedInWindow(ctx context.Context, from, to time.Time) ([]*PurchaseOrder, error)
	// CountByStatus counts orders per status, optionally for one creator
	CountByStatus(ctx context.Context, createdByID *uuid.UUID) (map[Status]int64, error)
	// TotalApproved sums APPROVED orders matching q
	TotalApproved(ctx context.Context, q SpendQuery) (decimal.Decimal, error)
}
