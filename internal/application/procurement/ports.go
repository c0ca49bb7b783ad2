package procurement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/umitgh/procurement-system/internal/domain/identity"
	"github.com/umitgh/procurement-system/internal/domain/partner"
)

// Actor is the authenticated caller of a service operation
type Actor struct {
	ID   uuid.UUID
	Role identity.Role
}

// IsAdmin reports administrative rights
func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

// OrderBrief is the order summary rendered into notifications
type OrderBrief struct {
	OrderID      uuid.UUID
	PONumber     string
	TotalAmount  decimal.Decimal
	SupplierName string
	CompanyName  string
	CreatorName  string
	Remarks      string
	Level        int
}

// Notifier sends workflow e-mails. Implementations record every attempt and
// report failures through the returned error.
type Notifier interface {
	NotifyApprovalNeeded(ctx context.Context, approver *identity.User, order OrderBrief) error
	NotifyApproved(ctx context.Context, creator *identity.User, order OrderBrief) error
	NotifyRejected(ctx context.Context, creator *identity.User, order OrderBrief, reason string) error
	SendPurchaseOrderToSupplier(ctx context.Context, supplier *partner.Supplier, order OrderBrief, pdf []byte) error
}

// DocumentRenderer turns a purchase order document into a PDF
type DocumentRenderer interface {
	RenderPurchaseOrder(ctx context.Context, doc *PurchaseOrderDocument) ([]byte, error)
}

// DocumentStore keeps generated PDFs
type DocumentStore interface {
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error
	GenerateDownloadURL(ctx context.Context, storageKey, fileName string) (string, time.Time, error)
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}

// SessionRevoker refuses bearer tokens already issued to a user
type SessionRevoker interface {
	RevokeUser(ctx context.Context, userID uuid.UUID) error
}

// DocumentKey is the storage key of an order's PDF
func DocumentKey(poNumber string) string {
	return "purchase-orders/" + poNumber + ".pdf"
}
