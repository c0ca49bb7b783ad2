package procurement

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/umitgh/procurement-system/internal/domain/identity"
	"github.com/umitgh/procurement-system/internal/domain/partner"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
	"github.com/umitgh/procurement-system/internal/domain/shared"
)

func newUser(name string, role identity.Role, limit int64, manager *identity.User) *identity.User {
	u := &identity.User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             name + "@example.com",
		Name:              name,
		Role:              role,
		ApprovalLimit:     decimal.NewFromInt(limit),
		Active:            true,
	}
	if manager != nil {
		id := manager.ID
		u.ManagerID = &id
	}
	return u
}

func newSupplier(t *testing.T, name string) *partner.Supplier {
	t.Helper()
	s, err := partner.NewSupplier(name, "sales@"+name+".example.com")
	require.NoError(t, err)
	return s
}

func newCompany(t *testing.T) *partner.Company {
	t.Helper()
	c, err := partner.NewCompany("Acme Holdings")
	require.NoError(t, err)
	return c
}

func lines(amounts ...int64) []procurement.LineItemInput {
	out := make([]procurement.LineItemInput, len(amounts))
	for i, a := range amounts {
		out[i] = procurement.LineItemInput{
			ItemName:  "Item",
			UnitPrice: decimal.NewFromInt(a),
			Quantity:  decimal.NewFromInt(1),
		}
	}
	return out
}

func newDraftOrder(t *testing.T, creator uuid.UUID, supplier, company uuid.UUID, amounts ...int64) *procurement.PurchaseOrder {
	t.Helper()
	po, err := procurement.NewPurchaseOrder("PO-20260312-0001", creator, supplier, company, "", lines(amounts...))
	require.NoError(t, err)
	return po
}

func newPendingOrder(t *testing.T, creator uuid.UUID, amounts ...int64) *procurement.PurchaseOrder {
	t.Helper()
	po := newDraftOrder(t, creator, uuid.New(), uuid.New(), amounts...)
	require.NoError(t, po.Submit())
	po.ClearDomainEvents()
	return po
}

// abcHierarchy is A (limit 1000) reporting to B (50000) reporting to C (100000)
type abcHierarchy struct {
	a, b, c *identity.User
}

func newABC() abcHierarchy {
	c := newUser("carol", identity.RoleManager, 100000, nil)
	b := newUser("bob", identity.RoleManager, 50000, c)
	a := newUser("alice", identity.RoleUser, 1000, b)
	return abcHierarchy{a: a, b: b, c: c}
}

func (h abcHierarchy) register(users *MockUserRepository) {
	for _, u := range []*identity.User{h.a, h.b, h.c} {
		users.On("FindByID", mockCtx, u.ID).Return(u, nil).Maybe()
	}
}

func eventTypes(events []shared.DomainEvent) []string {
	types := make([]string, len(events))
	for i, e := range events {
		types[i] = e.EventType()
	}
	return types
}
