package partner

import (
	"strings"

	"github.com/umitgh/procurement-system/internal/domain/shared"
)

// Company is the ordering legal entity printed on a purchase order
type Company struct {
	shared.BaseAggregateRoot
	Name    string
	TaxID   string
	Address string
	Active  bool
}

// NewCompany creates an active company
func NewCompany(name string) (*Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot be empty")
	}
	return &Company{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Active:            true,
	}, nil
}

// SetDetails sets the tax id and postal address printed on documents
func (c *Company) SetDetails(taxID, address string) {
	c.TaxID = strings.TrimSpace(taxID)
	c.Address = strings.TrimSpace(address)
	c.Touch()
}

// IsActive returns whether the company is active
func (c *Company) IsActive() bool {
	return c.Active
}
