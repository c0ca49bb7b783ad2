package procurement

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/umitgh/procurement-system/internal/domain/identity"
	"github.com/umitgh/procurement-system/internal/domain/partner"
	"github.com/umitgh/procurement-system/internal/domain/shared"
	"go.uber.org/zap"
)

// DirectoryService maintains users, suppliers and companies. All changes
// require an administrator.
type DirectoryService struct {
	userRepo     identity.UserRepository
	supplierRepo partner.SupplierRepository
	companyRepo  partner.CompanyRepository
	sessions     SessionRevoker
	logger       *zap.Logger
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(
	userRepo identity.UserRepository,
	supplierRepo partner.SupplierRepository,
	companyRepo partner.CompanyRepository,
	logger *zap.Logger,
) *DirectoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryService{
		userRepo:     userRepo,
		supplierRepo: supplierRepo,
		companyRepo:  companyRepo,
		logger:       logger,
	}
}

// SetSessionRevoker makes DeactivateUser revoke the user's tokens
func (s *DirectoryService) SetSessionRevoker(r SessionRevoker) {
	s.sessions = r
}

func requireAdmin(actor Actor) error {
	if !actor.IsAdmin() {
		return shared.ErrForbidden
	}
	return nil
}

func (f DirectoryListFilter) toFilter(orderBy string) shared.Filter {
	return shared.Filter{
		Page:     f.Page,
		PageSize: f.PageSize,
		OrderBy:  orderBy,
		OrderDir: "asc",
		Search:   strings.TrimSpace(f.Search),
	}.Normalize()
}

// ==================== Users ====================

// CreateUser adds a directory user
func (s *DirectoryService) CreateUser(ctx context.Context, actor Actor, req CreateUserRequest) (*UserResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, identity.ErrEmailExists
	}

	user, err := identity.NewUser(req.Email, req.Name, req.Password, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}
	if req.ApprovalLimit != nil {
		if err := user.SetApprovalLimit(*req.ApprovalLimit); err != nil {
			return nil, err
		}
	}
	if req.ManagerID != nil {
		if err := s.assignManager(ctx, user, *req.ManagerID); err != nil {
			return nil, err
		}
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
		zap.String("created_by", actor.ID.String()),
	)
	resp := ToUserResponse(user)
	return &resp, nil
}

// GetUser returns one user. Users may read their own entry.
func (s *DirectoryService) GetUser(ctx context.Context, actor Actor, id uuid.UUID) (*UserResponse, error) {
	if actor.ID != id {
		if err := requireAdmin(actor); err != nil {
			return nil, err
		}
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// ListUsers lists directory users
func (s *DirectoryService) ListUsers(ctx context.Context, actor Actor, filter DirectoryListFilter) (shared.Paginated[UserResponse], error) {
	if err := requireAdmin(actor); err != nil {
		return shared.Paginated[UserResponse]{}, err
	}
	f := filter.toFilter("name")
	users, total, err := s.userRepo.FindAll(ctx, f)
	if err != nil {
		return shared.Paginated[UserResponse]{}, err
	}
	items := make([]UserResponse, len(users))
	for i, u := range users {
		items[i] = ToUserResponse(u)
	}
	return shared.NewPaginated(items, total, f.Page, f.PageSize), nil
}

// UpdateUser changes the role, limit, manager, activity or password
func (s *DirectoryService) UpdateUser(ctx context.Context, actor Actor, id uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := user.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Role != nil {
		if err := user.SetRole(identity.Role(*req.Role)); err != nil {
			return nil, err
		}
	}
	if req.ApprovalLimit != nil {
		if err := user.SetApprovalLimit(*req.ApprovalLimit); err != nil {
			return nil, err
		}
	}
	switch {
	case req.ClearManager:
		if err := user.SetManager(nil); err != nil {
			return nil, err
		}
	case req.ManagerID != nil:
		if err := s.assignManager(ctx, user, *req.ManagerID); err != nil {
			return nil, err
		}
	}
	if req.IsActive != nil {
		if *req.IsActive {
			user.Activate()
		} else {
			user.Deactivate()
		}
	}
	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// DeactivateUser soft-deletes a user. Chains stop at inactive managers.
func (s *DirectoryService) DeactivateUser(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	user.Deactivate()
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}
	if s.sessions != nil {
		if err := s.sessions.RevokeUser(ctx, user.ID); err != nil {
			s.logger.Error("Failed to revoke sessions of deactivated user",
				zap.String("user_id", user.ID.String()),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (s *DirectoryService) assignManager(ctx context.Context, user *identity.User, managerID uuid.UUID) error {
	if managerID != user.ID {
		if _, err := s.userRepo.FindByID(ctx, managerID); err != nil {
			return err
		}
	}
	return user.SetManager(&managerID)
}

// ==================== Suppliers ====================

// CreateSupplier adds a supplier
func (s *DirectoryService) CreateSupplier(ctx context.Context, actor Actor, req CreateSupplierRequest) (*SupplierResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	exists, err := s.supplierRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, partner.ErrSupplierEmailExists
	}

	supplier, err := partner.NewSupplier(req.Name, req.Email)
	if err != nil {
		return nil, err
	}
	supplier.NameEn = strings.TrimSpace(req.NameEn)
	supplier.Remarks = strings.TrimSpace(req.Remarks)
	supplier.SetContact(req.ContactPerson, req.Phone, req.Address)
	supplier.SetTaxID(req.TaxID)

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// GetSupplier returns one supplier
func (s *DirectoryService) GetSupplier(ctx context.Context, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// ListSuppliers lists suppliers
func (s *DirectoryService) ListSuppliers(ctx context.Context, filter DirectoryListFilter) (shared.Paginated[SupplierResponse], error) {
	f := filter.toFilter("name")
	suppliers, total, err := s.supplierRepo.FindAll(ctx, f)
	if err != nil {
		return shared.Paginated[SupplierResponse]{}, err
	}
	items := make([]SupplierResponse, len(suppliers))
	for i, sp := range suppliers {
		items[i] = ToSupplierResponse(sp)
	}
	return shared.NewPaginated(items, total, f.Page, f.PageSize), nil
}

// UpdateSupplier changes contact details or activity
func (s *DirectoryService) UpdateSupplier(ctx context.Context, actor Actor, id uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	contact, phone, address := supplier.ContactPerson, supplier.Phone, supplier.Address
	if req.ContactPerson != nil {
		contact = *req.ContactPerson
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Address != nil {
		address = *req.Address
	}
	supplier.SetContact(contact, phone, address)
	if req.TaxID != nil {
		supplier.SetTaxID(*req.TaxID)
	}
	if req.Remarks != nil {
		supplier.Remarks = strings.TrimSpace(*req.Remarks)
	}
	if req.IsActive != nil {
		if *req.IsActive {
			supplier.Activate()
		} else {
			supplier.Deactivate()
		}
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// ==================== Companies ====================

// CreateCompany adds a company
func (s *DirectoryService) CreateCompany(ctx context.Context, actor Actor, req CreateCompanyRequest) (*CompanyResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	company, err := partner.NewCompany(req.Name)
	if err != nil {
		return nil, err
	}
	company.SetDetails(req.TaxID, req.Address)
	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}
	resp := ToCompanyResponse(company)
	return &resp, nil
}

// ListCompanies lists companies
func (s *DirectoryService) ListCompanies(ctx context.Context, filter DirectoryListFilter) (shared.Paginated[CompanyResponse], error) {
	f := filter.toFilter("name")
	companies, total, err := s.companyRepo.FindAll(ctx, f)
	if err != nil {
		return shared.Paginated[CompanyResponse]{}, err
	}
	items := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		items[i] = ToCompanyResponse(c)
	}
	return shared.NewPaginated(items, total, f.Page, f.PageSize), nil
}
