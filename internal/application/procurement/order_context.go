package procurement

import (
	"context"

	"github.com/google/uuid"
	"github.com/umitgh/procurement-system/internal/domain/identity"
	"github.com/umitgh/procurement-system/internal/domain/partner"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
)

// OrderContextLoader gathers an order and the parties named on it for
// notifications and documents
type OrderContextLoader struct {
	orders    procurement.PurchaseOrderRepository
	users     identity.UserRepository
	suppliers partner.SupplierRepository
	companies partner.CompanyRepository
}

// NewOrderContextLoader creates a new OrderContextLoader
func NewOrderContextLoader(
	orders procurement.PurchaseOrderRepository,
	users identity.UserRepository,
	suppliers partner.SupplierRepository,
	companies partner.CompanyRepository,
) *OrderContextLoader {
	return &OrderContextLoader{orders: orders, users: users, suppliers: suppliers, companies: companies}
}

// orderContext is an order with its creator, supplier and company
type orderContext struct {
	order    *procurement.PurchaseOrder
	creator  *identity.User
	supplier *partner.Supplier
	company  *partner.Company
}

func (l *OrderContextLoader) load(ctx context.Context, orderID uuid.UUID) (*orderContext, error) {
	order, err := l.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	creator, err := l.users.FindByID(ctx, order.CreatedByID)
	if err != nil {
		return nil, err
	}
	supplier, err := l.suppliers.FindByID(ctx, order.SupplierID)
	if err != nil {
		return nil, err
	}
	company, err := l.companies.FindByID(ctx, order.CompanyID)
	if err != nil {
		return nil, err
	}
	return &orderContext{order: order, creator: creator, supplier: supplier, company: company}, nil
}

func (c *orderContext) brief(level int) OrderBrief {
	return OrderBrief{
		OrderID:      c.order.ID,
		PONumber:     c.order.PONumber,
		TotalAmount:  c.order.TotalAmount,
		SupplierName: c.supplier.Name,
		CompanyName:  c.company.Name,
		CreatorName:  c.creator.Name,
		Remarks:      c.order.Remarks,
		Level:        level,
	}
}
