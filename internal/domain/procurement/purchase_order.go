package procurement

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/umitgh/procurement-system/internal/domain/shared"
)

// AggregateTypePurchaseOrder names the aggregate in events and the outbox
const AggregateTypePurchaseOrder = "PurchaseOrder"

// LineItemInput carries the caller-supplied fields of one line
type LineItemInput struct {
	ItemID          *uuid.UUID
	ItemName        string
	ItemDescription string
	ItemSKU         string
	Character1      string
	Character2      string
	Character3      string
	UnitPrice       decimal.Decimal
	Quantity        decimal.Decimal
}

// LineItem is one priced line of a purchase order
type LineItem struct {
	ID              uuid.UUID
	PurchaseOrderID uuid.UUID
	ItemID          *uuid.UUID
	ItemName        string
	ItemDescription string
	ItemSKU         string
	Character1      string
	Character2      string
	Character3      string
	UnitPrice       decimal.Decimal
	Quantity        decimal.Decimal
	LineTotal       decimal.Decimal
	Position        int
}

func newLineItem(orderID uuid.UUID, position int, in LineItemInput) (LineItem, error) {
	name := strings.TrimSpace(in.ItemName)
	if name == "" {
		return LineItem{}, validationError(fmt.Sprintf("Line %d: item name is required", position))
	}
	if in.UnitPrice.IsNegative() {
		return LineItem{}, validationError(fmt.Sprintf("Line %d: unit price cannot be negative", position))
	}
	if !in.Quantity.IsPositive() {
		return LineItem{}, validationError(fmt.Sprintf("Line %d: quantity must be positive", position))
	}
	return LineItem{
		ID:              uuid.New(),
		PurchaseOrderID: orderID,
		ItemID:          in.ItemID,
		ItemName:        name,
		ItemDescription: strings.TrimSpace(in.ItemDescription),
		ItemSKU:         strings.TrimSpace(in.ItemSKU),
		Character1:      in.Character1,
		Character2:      in.Character2,
		Character3:      in.Character3,
		UnitPrice:       in.UnitPrice,
		Quantity:        in.Quantity,
		LineTotal:       in.UnitPrice.Mul(in.Quantity),
		Position:        position,
	}, nil
}

// PurchaseOrder is the aggregate root of the approval workflow. TotalAmount
// is always the sum of its line totals.
type PurchaseOrder struct {
	shared.BaseAggregateRoot
	PONumber    string
	Date        time.Time
	Status      Status
	TotalAmount decimal.Decimal
	CreatedByID uuid.UUID
	SupplierID  uuid.UUID
	CompanyID   uuid.UUID
	Remarks     string
	SubmittedAt *time.Time
	ApprovedAt  *time.Time
	RejectedAt  *time.Time
	CancelledAt *time.Time
	Items       []LineItem
}

// NewPurchaseOrder creates a draft order with its line items
func NewPurchaseOrder(poNumber string, creatorID, supplierID, companyID uuid.UUID, remarks string, items []LineItemInput) (*PurchaseOrder, error) {
	if poNumber == "" {
		return nil, validationError("PO number cannot be empty")
	}
	if creatorID == uuid.Nil {
		return nil, validationError("Creator is required")
	}
	if supplierID == uuid.Nil || companyID == uuid.Nil {
		return nil, validationError("Supplier and Company are required")
	}

	root := shared.NewBaseAggregateRoot()
	order := &PurchaseOrder{
		BaseAggregateRoot: root,
		PONumber:          poNumber,
		Date:              root.CreatedAt,
		Status:            StatusDraft,
		TotalAmount:       decimal.Zero,
		CreatedByID:       creatorID,
		SupplierID:        supplierID,
		CompanyID:         companyID,
		Remarks:           strings.TrimSpace(remarks),
	}
	if err := order.setItems(items); err != nil {
		return nil, err
	}
	return order, nil
}

// CanBeModifiedBy reports whether actor owns the order or is an admin
func (o *PurchaseOrder) CanBeModifiedBy(actorID uuid.UUID, isAdmin bool) bool {
	return isAdmin || o.CreatedByID == actorID
}

// EnsureEditableBy guards draft-only mutations
func (o *PurchaseOrder) EnsureEditableBy(actorID uuid.UUID, isAdmin bool) error {
	if !o.CanBeModifiedBy(actorID, isAdmin) {
		return ErrNotOwner
	}
	if o.Status != StatusDraft {
		return ErrPurchaseOrderNotEditable
	}
	return nil
}

// ReplaceItems swaps the full set of line items. Draft only.
func (o *PurchaseOrder) ReplaceItems(items []LineItemInput) error {
	if o.Status != StatusDraft {
		return ErrPurchaseOrderNotEditable
	}
	if err := o.setItems(items); err != nil {
		return err
	}
	o.Touch()
	return nil
}

// UpdateHeader changes supplier, company and remarks. Draft only.
func (o *PurchaseOrder) UpdateHeader(supplierID, companyID uuid.UUID, remarks string) error {
	if o.Status != StatusDraft {
		return ErrPurchaseOrderNotEditable
	}
	if supplierID == uuid.Nil || companyID == uuid.Nil {
		return validationError("Supplier and Company are required")
	}
	o.SupplierID = supplierID
	o.CompanyID = companyID
	o.Remarks = strings.TrimSpace(remarks)
	o.Touch()
	return nil
}

// AppendRemark adds a note on its own line
func (o *PurchaseOrder) AppendRemark(note string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}
	if o.Remarks == "" {
		o.Remarks = note
	} else {
		o.Remarks = o.Remarks + "\n" + note
	}
	o.Touch()
}

// Submit sends a draft into approval
func (o *PurchaseOrder) Submit() error {
	if err := checkTransition(o.Status, StatusPendingApproval); err != nil {
		return err
	}
	if len(o.Items) == 0 {
		return validationError("At least one line item is required")
	}
	now := shared.Now()
	o.Status = StatusPendingApproval
	o.SubmittedAt = &now
	o.UpdatedAt = now
	o.AddDomainEvent(NewPurchaseOrderSubmittedEvent(o))
	return nil
}

// Approve finalizes the order. autoApproved marks orders that needed no
// approver because the creator's own limit covered them.
func (o *PurchaseOrder) Approve(autoApproved bool) error {
	if err := checkTransition(o.Status, StatusApproved); err != nil {
		return err
	}
	now := shared.Now()
	o.Status = StatusApproved
	o.ApprovedAt = &now
	o.UpdatedAt = now
	o.AddDomainEvent(NewPurchaseOrderApprovedEvent(o, autoApproved))
	return nil
}

// Reject terminates the order
func (o *PurchaseOrder) Reject(rejectedBy uuid.UUID, reason string) error {
	if err := checkTransition(o.Status, StatusRejected); err != nil {
		return err
	}
	now := shared.Now()
	o.Status = StatusRejected
	o.RejectedAt = &now
	o.UpdatedAt = now
	o.AddDomainEvent(NewPurchaseOrderRejectedEvent(o, rejectedBy, reason))
	return nil
}

// Cancel withdraws an order that is awaiting approval
func (o *PurchaseOrder) Cancel(actorID uuid.UUID, isAdmin bool) error {
	if !o.CanBeModifiedBy(actorID, isAdmin) {
		return ErrNotOwner
	}
	if err := checkTransition(o.Status, StatusCancelled); err != nil {
		return err
	}
	now := shared.Now()
	o.Status = StatusCancelled
	o.CancelledAt = &now
	o.UpdatedAt = now
	o.AddDomainEvent(NewPurchaseOrderCancelledEvent(o, actorID))
	return nil
}

// IsPendingApproval reports whether approvers may act on the order
func (o *PurchaseOrder) IsPendingApproval() bool {
	return o.Status == StatusPendingApproval
}

func (o *PurchaseOrder) setItems(inputs []LineItemInput) error {
	if len(inputs) == 0 {
		return validationError("At least one line item is required")
	}
	items := make([]LineItem, 0, len(inputs))
	total := decimal.Zero
	for i, in := range inputs {
		item, err := newLineItem(o.ID, i+1, in)
		if err != nil {
			return err
		}
		total = total.Add(item.LineTotal)
		items = append(items, item)
	}
	o.Items = items
	o.TotalAmount = total
	return nil
}
