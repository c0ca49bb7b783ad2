package partner

import (
	"regexp"
	"strings"

	"github.com/umitgh/procurement-system/internal/domain/shared"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Supplier is a vendor purchase orders are issued to. Email is where the
// approved order document is dispatched.
type Supplier struct {
	shared.BaseAggregateRoot
	Name          string
	NameEn        string
	Email         string
	Phone         string
	ContactPerson string
	TaxID         string
	Address       string
	Remarks       string
	Active        bool
}

// NewSupplier creates an active supplier
func NewSupplier(name, email string) (*Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot exceed 200 characters")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Supplier email is invalid")
	}

	return &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             email,
		Active:            true,
	}, nil
}

// SetContact sets the optional contact details
func (s *Supplier) SetContact(contactPerson, phone, address string) {
	s.ContactPerson = strings.TrimSpace(contactPerson)
	s.Phone = strings.TrimSpace(phone)
	s.Address = strings.TrimSpace(address)
	s.Touch()
	s.IncrementVersion()
}

// SetTaxID sets the supplier's tax registration number
func (s *Supplier) SetTaxID(taxID string) {
	s.TaxID = strings.TrimSpace(taxID)
	s.Touch()
}

// Activate makes the supplier available for new orders again
func (s *Supplier) Activate() {
	s.Active = true
	s.Touch()
	s.IncrementVersion()
}

// Deactivate hides the supplier from new purchase orders
func (s *Supplier) Deactivate() {
	s.Active = false
	s.Touch()
	s.IncrementVersion()
}

// IsActive returns whether the supplier accepts new orders
func (s *Supplier) IsActive() bool {
	return s.Active
}
