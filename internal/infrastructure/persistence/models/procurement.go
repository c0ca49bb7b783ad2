package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
)

// PurchaseOrderModel is the persistence model for the PurchaseOrder aggregate.
type PurchaseOrderModel struct {
	AggregateModel
	PONumber    string                   `gorm:"column:po_number;type:varchar(30);not null;uniqueIndex"`
	Date        time.Time                `gorm:"not null"`
	Status      procurement.Status       `gorm:"type:varchar(20);not null;index"`
	TotalAmount decimal.Decimal          `gorm:"type:decimal(18,2);not null"`
	CreatedByID uuid.UUID                `gorm:"type:uuid;not null;index"`
	SupplierID  uuid.UUID                `gorm:"type:uuid;not null;index:idx_po_supplier_approved,priority:1"`
	CompanyID   uuid.UUID                `gorm:"type:uuid;not null"`
	Remarks     string                   `gorm:"type:text"`
	SubmittedAt *time.Time
	ApprovedAt  *time.Time `gorm:"index:idx_po_supplier_approved,priority:2"`
	RejectedAt  *time.Time
	CancelledAt *time.Time
	Items       []PurchaseOrderItemModel `gorm:"foreignKey:PurchaseOrderID;references:ID"`
}

// TableName returns the table name for GORM
func (PurchaseOrderModel) TableName() string {
	return "purchase_orders"
}

// ToDomain converts the persistence model to a domain PurchaseOrder.
// Items are included when they were preloaded.
func (m *PurchaseOrderModel) ToDomain() *procurement.PurchaseOrder {
	order := &procurement.PurchaseOrder{
		BaseAggregateRoot: m.ToAggregateRoot(),
		PONumber:          m.PONumber,
		Date:              m.Date,
		Status:            m.Status,
		TotalAmount:       m.TotalAmount,
		CreatedByID:       m.CreatedByID,
		SupplierID:        m.SupplierID,
		CompanyID:         m.CompanyID,
		Remarks:           m.Remarks,
		SubmittedAt:       m.SubmittedAt,
		ApprovedAt:        m.ApprovedAt,
		RejectedAt:        m.RejectedAt,
		CancelledAt:       m.CancelledAt,
		Items:             make([]procurement.LineItem, len(m.Items)),
	}
	for i := range m.Items {
		order.Items[i] = m.Items[i].ToDomain()
	}
	return order
}

// FromDomain populates the persistence model from a domain PurchaseOrder.
func (m *PurchaseOrderModel) FromDomain(o *procurement.PurchaseOrder) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.PONumber = o.PONumber
	m.Date = o.Date
	m.Status = o.Status
	m.TotalAmount = o.TotalAmount
	m.CreatedByID = o.CreatedByID
	m.SupplierID = o.SupplierID
	m.CompanyID = o.CompanyID
	m.Remarks = o.Remarks
	m.SubmittedAt = o.SubmittedAt
	m.ApprovedAt = o.ApprovedAt
	m.RejectedAt = o.RejectedAt
	m.CancelledAt = o.CancelledAt
	m.Items = make([]PurchaseOrderItemModel, len(o.Items))
	for i := range o.Items {
		m.Items[i] = *PurchaseOrderItemModelFromDomain(&o.Items[i])
	}
}

// PurchaseOrderModelFromDomain creates a new persistence model from a domain PurchaseOrder.
func PurchaseOrderModelFromDomain(o *procurement.PurchaseOrder) *PurchaseOrderModel {
	m := &PurchaseOrderModel{}
	m.FromDomain(o)
	return m
}

// PurchaseOrderItemModel is one line of a purchase order.
type PurchaseOrderItemModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PurchaseOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID          *uuid.UUID      `gorm:"type:uuid"`
	ItemName        string          `gorm:"type:varchar(200);not null"`
	ItemDescription string          `gorm:"type:text"`
	ItemSKU         string          `gorm:"column:item_sku;type:varchar(100)"`
	Character1      string          `gorm:"column:character1;type:varchar(100)"`
	Character2      string          `gorm:"column:character2;type:varchar(100)"`
	Character3      string          `gorm:"column:character3;type:varchar(100)"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Quantity        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LineTotal       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Position        int             `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseOrderItemModel) TableName() string {
	return "purchase_order_items"
}

// ToDomain converts the persistence model to a domain LineItem.
func (m *PurchaseOrderItemModel) ToDomain() procurement.LineItem {
	return procurement.LineItem{
		ID:              m.ID,
		PurchaseOrderID: m.PurchaseOrderID,
		ItemID:          m.ItemID,
		ItemName:        m.ItemName,
		ItemDescription: m.ItemDescription,
		ItemSKU:         m.ItemSKU,
		Character1:      m.Character1,
		Character2:      m.Character2,
		Character3:      m.Character3,
		UnitPrice:       m.UnitPrice,
		Quantity:        m.Quantity,
		LineTotal:       m.LineTotal,
		Position:        m.Position,
	}
}

// PurchaseOrderItemModelFromDomain creates a persistence model from a domain LineItem.
func PurchaseOrderItemModelFromDomain(li *procurement.LineItem) *PurchaseOrderItemModel {
	return &PurchaseOrderItemModel{
		ID:              li.ID,
		PurchaseOrderID: li.PurchaseOrderID,
		ItemID:          li.ItemID,
		ItemName:        li.ItemName,
		ItemDescription: li.ItemDescription,
		ItemSKU:         li.ItemSKU,
		Character1:      li.Character1,
		Character2:      li.Character2,
		Character3:      li.Character3,
		UnitPrice:       li.UnitPrice,
		Quantity:        li.Quantity,
		LineTotal:       li.LineTotal,
		Position:        li.Position,
	}
}

// ApprovalModel is one approver's vote on one level of an order.
type ApprovalModel struct {
	BaseModel
	PurchaseOrderID uuid.UUID                  `gorm:"type:uuid;not null;uniqueIndex:idx_approval_order_level_approver,priority:1"`
	Level           int                        `gorm:"not null;uniqueIndex:idx_approval_order_level_approver,priority:2"`
	ApproverID      uuid.UUID                  `gorm:"type:uuid;not null;index;uniqueIndex:idx_approval_order_level_approver,priority:3"`
	Status          procurement.ApprovalStatus `gorm:"type:varchar(20);not null;index"`
	Comments        string                     `gorm:"type:text"`
	RespondedAt     *time.Time
}

// TableName returns the table name for GORM
func (ApprovalModel) TableName() string {
	return "approvals"
}

// ToDomain converts the persistence model to a domain Approval.
func (m *ApprovalModel) ToDomain() *procurement.Approval {
	return &procurement.Approval{
		BaseEntity:      m.BaseModel.ToDomain(),
		PurchaseOrderID: m.PurchaseOrderID,
		ApproverID:      m.ApproverID,
		Level:           m.Level,
		Status:          m.Status,
		Comments:        m.Comments,
		RespondedAt:     m.RespondedAt,
	}
}

// ApprovalModelFromDomain creates a persistence model from a domain Approval.
func ApprovalModelFromDomain(a *procurement.Approval) *ApprovalModel {
	m := &ApprovalModel{
		PurchaseOrderID: a.PurchaseOrderID,
		ApproverID:      a.ApproverID,
		Level:           a.Level,
		Status:          a.Status,
		Comments:        a.Comments,
		RespondedAt:     a.RespondedAt,
	}
	m.FromDomainBaseEntity(a.BaseEntity)
	return m
}
