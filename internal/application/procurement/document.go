package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/umitgh/procurement-system/internal/domain/identity"
	"github.com/umitgh/procurement-system/internal/domain/partner"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
)

// PurchaseOrderDocument is everything printed on a purchase order PDF
type PurchaseOrderDocument struct {
	PONumber    string
	Date        time.Time
	Status      string
	Supplier    DocumentParty
	Company     DocumentParty
	CreatorName string
	Remarks     string
	Lines       []DocumentLine
	TotalAmount decimal.Decimal
	Approvals   []DocumentApproval
}

// DocumentParty is a supplier or buying company block
type DocumentParty struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	TaxID         string
	Address       string
}

// DocumentLine is one printed line item
type DocumentLine struct {
	Position    int
	Name        string
	Description string
	SKU         string
	Attributes  []string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// DocumentApproval is one signature row
type DocumentApproval struct {
	Level        int
	ApproverName string
	Status       string
	RespondedAt  *time.Time
	Comments     string
}

// BuildPurchaseOrderDocument assembles the printable view of an order.
// approvers maps approver ids to users; unknown ids print as blank names.
func BuildPurchaseOrderDocument(
	order *procurement.PurchaseOrder,
	supplier *partner.Supplier,
	company *partner.Company,
	creator *identity.User,
	approvals []*procurement.Approval,
	approvers map[uuid.UUID]*identity.User,
) *PurchaseOrderDocument {
	doc := &PurchaseOrderDocument{
		PONumber:    order.PONumber,
		Date:        order.Date,
		Status:      string(order.Status),
		Remarks:     order.Remarks,
		TotalAmount: order.TotalAmount,
	}
	if supplier != nil {
		doc.Supplier = DocumentParty{
			Name:          supplier.Name,
			ContactPerson: supplier.ContactPerson,
			Email:         supplier.Email,
			Phone:         supplier.Phone,
			TaxID:         supplier.TaxID,
			Address:       supplier.Address,
		}
	}
	if company != nil {
		doc.Company = DocumentParty{
			Name:    company.Name,
			TaxID:   company.TaxID,
			Address: company.Address,
		}
	}
	if creator != nil {
		doc.CreatorName = creator.Name
	}

	for _, it := range order.Items {
		var attrs []string
		for _, c := range []string{it.Character1, it.Character2, it.Character3} {
			if c != "" {
				attrs = append(attrs, c)
			}
		}
		doc.Lines = append(doc.Lines, DocumentLine{
			Position:    it.Position,
			Name:        it.ItemName,
			Description: it.ItemDescription,
			SKU:         it.ItemSKU,
			Attributes:  attrs,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
		})
	}

	for _, a := range approvals {
		row := DocumentApproval{
			Level:       a.Level,
			Status:      string(a.Status),
			RespondedAt: a.RespondedAt,
			Comments:    a.Comments,
		}
		if u, ok := approvers[a.ApproverID]; ok {
			row.ApproverName = u.Name
		}
		doc.Approvals = append(doc.Approvals, row)
	}
	return doc
}
