package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/umitgh/procurement-system/internal/domain/shared"
)

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*Supplier, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Supplier, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, supplier *Supplier) error
}

// CompanyRepository defines the interface for company persistence
type CompanyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Company, int64, error)
	Save(ctx context.Context, company *Company) error
}
