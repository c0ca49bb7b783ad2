package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
)

// ==================== Purchase Order DTOs ====================

// LineItemInput represents one line in a create or update request
type LineItemInput struct {
	ItemID          *uuid.UUID      `json:"item_id"`
	ItemName        string          `json:"item_name" binding:"required,min=1,max=200"`
	ItemDescription string          `json:"item_description" binding:"max=1000"`
	ItemSKU         string          `json:"item_sku" binding:"max=100"`
	Character1      string          `json:"character1" binding:"max=100"`
	Character2      string          `json:"character2" binding:"max=100"`
	Character3      string          `json:"character3" binding:"max=100"`
	UnitPrice       decimal.Decimal `json:"unit_price" binding:"gte=0"`
	Quantity        decimal.Decimal `json:"quantity" binding:"gt=0"`
}

// CreatePurchaseOrderRequest represents a request to create a purchase order
type CreatePurchaseOrderRequest struct {
	SupplierID uuid.UUID       `json:"supplier_id" binding:"required"`
	CompanyID  uuid.UUID       `json:"company_id" binding:"required"`
	Remarks    string          `json:"remarks" binding:"max=2000"`
	LineItems  []LineItemInput `json:"line_items" binding:"required,min=1,dive"`
}

// UpdatePurchaseOrderRequest replaces the header and all lines of a draft
type UpdatePurchaseOrderRequest struct {
	SupplierID uuid.UUID       `json:"supplier_id" binding:"required"`
	CompanyID  uuid.UUID       `json:"company_id" binding:"required"`
	Remarks    string          `json:"remarks" binding:"max=2000"`
	LineItems  []LineItemInput `json:"line_items" binding:"required,min=1,dive"`
}

// PurchaseOrderListFilter represents list query parameters
type PurchaseOrderListFilter struct {
	Page       int        `form:"page"`
	PageSize   int        `form:"page_size"`
	OrderBy    string     `form:"order_by" binding:"omitempty,oneof=created_at po_number total_amount submitted_at approved_at"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search     string     `form:"search"`
	Status     string     `form:"status" binding:"omitempty,oneof=DRAFT PENDING_APPROVAL APPROVED REJECTED CANCELLED"`
	SupplierID *uuid.UUID `form:"supplier_id"`
}

// LineItemResponse represents one line in responses
type LineItemResponse struct {
	ID              uuid.UUID       `json:"id"`
	ItemID          *uuid.UUID      `json:"item_id,omitempty"`
	ItemName        string          `json:"item_name"`
	ItemDescription string          `json:"item_description,omitempty"`
	ItemSKU         string          `json:"item_sku,omitempty"`
	Character1      string          `json:"character1,omitempty"`
	Character2      string          `json:"character2,omitempty"`
	Character3      string          `json:"character3,omitempty"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Quantity        decimal.Decimal `json:"quantity"`
	LineTotal       decimal.Decimal `json:"line_total"`
}

// PurchaseOrderResponse represents a purchase order in API responses
type PurchaseOrderResponse struct {
	ID          uuid.UUID          `json:"id"`
	PONumber    string             `json:"po_number"`
	Date        time.Time          `json:"date"`
	Status      string             `json:"status"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	CreatedByID uuid.UUID          `json:"created_by_id"`
	SupplierID  uuid.UUID          `json:"supplier_id"`
	CompanyID   uuid.UUID          `json:"company_id"`
	Remarks     string             `json:"remarks,omitempty"`
	SubmittedAt *time.Time         `json:"submitted_at,omitempty"`
	ApprovedAt  *time.Time         `json:"approved_at,omitempty"`
	RejectedAt  *time.Time         `json:"rejected_at,omitempty"`
	CancelledAt *time.Time         `json:"cancelled_at,omitempty"`
	LineItems   []LineItemResponse `json:"line_items,omitempty"`
	Version     int                `json:"version"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// SubmitResponse reports the outcome of a submission
type SubmitResponse struct {
	Order         PurchaseOrderResponse `json:"purchase_order"`
	ApprovalCount int                   `json:"approval_count"`
	AutoApproved  bool                  `json:"auto_approved"`
	SpendExceeded bool                  `json:"spend_exceeded"`
}

// DocumentLinkResponse carries a presigned download link
type DocumentLinkResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ==================== Approval DTOs ====================

// DecisionRequest is an approver's verdict
type DecisionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=APPROVED REJECTED"`
	Comments string `json:"comments" binding:"max=2000"`
}

// DecisionResponse is returned after a decision is recorded
type DecisionResponse struct {
	POStatus string `json:"po_status"`
	Message  string `json:"message"`
}

// ApprovalResponse represents an approval in API responses
type ApprovalResponse struct {
	ID              uuid.UUID              `json:"id"`
	PurchaseOrderID uuid.UUID              `json:"purchase_order_id"`
	ApproverID      uuid.UUID              `json:"approver_id"`
	ApproverName    string                 `json:"approver_name,omitempty"`
	Level           int                    `json:"level"`
	Status          string                 `json:"status"`
	Comments        string                 `json:"comments,omitempty"`
	RespondedAt     *time.Time             `json:"responded_at,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	PurchaseOrder   *PurchaseOrderResponse `json:"purchase_order,omitempty"`
}

// ==================== Spend DTOs ====================

// MonthlySpendResponse is one supplier's approved spend in a month
type MonthlySpendResponse struct {
	SupplierID       uuid.UUID       `json:"supplier_id"`
	Month            string          `json:"month"`
	Total            decimal.Decimal `json:"total"`
	OrderCount       int64           `json:"order_count"`
	Threshold        decimal.Decimal `json:"threshold"`
	ExceedsThreshold bool            `json:"exceeds_threshold"`
}

// SupplierMonitoringEntry is one row of the monitoring view
type SupplierMonitoringEntry struct {
	SupplierID       uuid.UUID                     `json:"supplier_id"`
	SupplierName     string                        `json:"supplier_name"`
	SupplierEmail    string                        `json:"supplier_email"`
	TotalSpent       decimal.Decimal               `json:"total_spent"`
	POCount          int64                         `json:"po_count"`
	ExceedsThreshold bool                          `json:"exceeds_threshold"`
	PurchaseOrders   []SupplierMonitoringOrderLine `json:"purchase_orders"`
}

// SupplierMonitoringOrderLine is an approved order inside a monitoring row
type SupplierMonitoringOrderLine struct {
	ID          uuid.UUID       `json:"id"`
	PONumber    string          `json:"po_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ApprovedAt  *time.Time      `json:"approved_at"`
}

// SupplierMonitoringSummary aggregates the monitoring view
type SupplierMonitoringSummary struct {
	CurrentMonth                string          `json:"current_month"`
	Threshold                   decimal.Decimal `json:"threshold"`
	TotalSuppliers              int             `json:"total_suppliers"`
	SuppliersExceedingThreshold int             `json:"suppliers_exceeding_threshold"`
	TotalSpentThisMonth         decimal.Decimal `json:"total_spent_this_month"`
}

// SupplierMonitoringResponse is the monitoring view. Both lists are sorted
// by spend, largest first.
type SupplierMonitoringResponse struct {
	Summary            SupplierMonitoringSummary `json:"summary"`
	ExceedingSuppliers []SupplierMonitoringEntry `json:"exceeding_suppliers"`
	AllSuppliers       []SupplierMonitoringEntry `json:"all_suppliers"`
}

// TopSupplierResponse is one entry of the top suppliers list
type TopSupplierResponse struct {
	SupplierID   uuid.UUID       `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
	POCount      int64           `json:"po_count"`
}

// DashboardStatsResponse summarizes the workflow for the caller
type DashboardStatsResponse struct {
	CountsByStatus        map[string]int64 `json:"counts_by_status"`
	TotalPurchaseOrders   int64            `json:"total_purchase_orders"`
	PendingApprovalsForMe int64            `json:"pending_approvals_for_me"`
	TotalSpending         decimal.Decimal  `json:"total_spending"`
	MonthlySpending       decimal.Decimal  `json:"monthly_spending"`
}

// ==================== Mappers ====================

func toLineItemInputs(items []LineItemInput) []procurement.LineItemInput {
	out := make([]procurement.LineItemInput, len(items))
	for i, it := range items {
		out[i] = procurement.LineItemInput{
			ItemID:          it.ItemID,
			ItemName:        it.ItemName,
			ItemDescription: it.ItemDescription,
			ItemSKU:         it.ItemSKU,
			Character1:      it.Character1,
			Character2:      it.Character2,
			Character3:      it.Character3,
			UnitPrice:       it.UnitPrice,
			Quantity:        it.Quantity,
		}
	}
	return out
}

// ToPurchaseOrderResponse converts a domain order to a response DTO
func ToPurchaseOrderResponse(o *procurement.PurchaseOrder) PurchaseOrderResponse {
	lines := make([]LineItemResponse, len(o.Items))
	for i, it := range o.Items {
		lines[i] = LineItemResponse{
			ID:              it.ID,
			ItemID:          it.ItemID,
			ItemName:        it.ItemName,
			ItemDescription: it.ItemDescription,
			ItemSKU:         it.ItemSKU,
			Character1:      it.Character1,
			Character2:      it.Character2,
			Character3:      it.Character3,
			UnitPrice:       it.UnitPrice,
			Quantity:        it.Quantity,
			LineTotal:       it.LineTotal,
		}
	}
	return PurchaseOrderResponse{
		ID:          o.ID,
		PONumber:    o.PONumber,
		Date:        o.Date,
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount,
		CreatedByID: o.CreatedByID,
		SupplierID:  o.SupplierID,
		CompanyID:   o.CompanyID,
		Remarks:     o.Remarks,
		SubmittedAt: o.SubmittedAt,
		ApprovedAt:  o.ApprovedAt,
		RejectedAt:  o.RejectedAt,
		CancelledAt: o.CancelledAt,
		LineItems:   lines,
		Version:     o.Version,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// ToApprovalResponse converts a domain approval to a response DTO
func ToApprovalResponse(a *procurement.Approval) ApprovalResponse {
	return ApprovalResponse{
		ID:              a.ID,
		PurchaseOrderID: a.PurchaseOrderID,
		ApproverID:      a.ApproverID,
		Level:           a.Level,
		Status:          string(a.Status),
		Comments:        a.Comments,
		RespondedAt:     a.RespondedAt,
		CreatedAt:       a.CreatedAt,
	}
}

// ToMonthlySpendResponse converts a domain spend figure
func ToMonthlySpendResponse(s procurement.MonthlySpend) MonthlySpendResponse {
	return MonthlySpendResponse{
		SupplierID:       s.SupplierID,
		Month:            s.Month.String(),
		Total:            s.Total,
		OrderCount:       s.OrderCount,
		Threshold:        s.Threshold,
		ExceedsThreshold: s.ExceedsThreshold,
	}
}
