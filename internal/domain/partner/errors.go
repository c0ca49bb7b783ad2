package partner

import "github.com/umitgh/procurement-system/internal/domain/shared"

var (
	ErrSupplierNotFound    = shared.NewDomainError("SUPPLIER_NOT_FOUND", "Supplier not found")
	ErrCompanyNotFound     = shared.NewDomainError("COMPANY_NOT_FOUND", "Company not found")
	ErrSupplierInactive    = shared.NewDomainError("SUPPLIER_INACTIVE", "Supplier is not active")
	ErrSupplierEmailExists = shared.NewDomainError("SUPPLIER_ALREADY_EXISTS", "A supplier with this email already exists")
)
