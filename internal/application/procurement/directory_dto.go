package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/umitgh/procurement-system/internal/domain/identity"
	"github.com/umitgh/procurement-system/internal/domain/partner"
)

// ==================== User DTOs ====================

// CreateUserRequest creates a directory user
type CreateUserRequest struct {
	Email         string           `json:"email" binding:"required,email,max=200"`
	Name          string           `json:"name" binding:"required,min=1,max=200"`
	Password      string           `json:"password" binding:"required,min=8,max=72"`
	Role          string           `json:"role" binding:"omitempty,oneof=SUPER_ADMIN ADMIN MANAGER USER"`
	ApprovalLimit *decimal.Decimal `json:"approval_limit" binding:"omitempty,gte=0"`
	ManagerID     *uuid.UUID       `json:"manager_id"`
}

// UpdateUserRequest changes a directory user. Nil fields are left alone.
type UpdateUserRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Role          *string          `json:"role" binding:"omitempty,oneof=SUPER_ADMIN ADMIN MANAGER USER"`
	ApprovalLimit *decimal.Decimal `json:"approval_limit" binding:"omitempty,gte=0"`
	ManagerID     *uuid.UUID       `json:"manager_id"`
	ClearManager  bool             `json:"clear_manager"`
	IsActive      *bool            `json:"is_active"`
	Password      *string          `json:"password" binding:"omitempty,min=8,max=72"`
}

// UserResponse represents a directory user
type UserResponse struct {
	ID            uuid.UUID       `json:"id"`
	Email         string          `json:"email"`
	Name          string          `json:"name"`
	Role          string          `json:"role"`
	ApprovalLimit decimal.Decimal `json:"approval_limit"`
	ManagerID     *uuid.UUID      `json:"manager_id,omitempty"`
	IsActive      bool            `json:"is_active"`
	LastLoginAt   *time.Time      `json:"last_login_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ==================== Supplier DTOs ====================

// CreateSupplierRequest creates a supplier
type CreateSupplierRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=200"`
	NameEn        string `json:"name_en" binding:"max=200"`
	Email         string `json:"email" binding:"required,email,max=200"`
	Phone         string `json:"phone" binding:"max=50"`
	ContactPerson string `json:"contact_person" binding:"max=100"`
	TaxID         string `json:"tax_id" binding:"max=50"`
	Address       string `json:"address" binding:"max=500"`
	Remarks       string `json:"remarks" binding:"max=2000"`
}

// UpdateSupplierRequest changes a supplier. Nil fields are left alone.
type UpdateSupplierRequest struct {
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	ContactPerson *string `json:"contact_person" binding:"omitempty,max=100"`
	TaxID         *string `json:"tax_id" binding:"omitempty,max=50"`
	Address       *string `json:"address" binding:"omitempty,max=500"`
	Remarks       *string `json:"remarks" binding:"omitempty,max=2000"`
	IsActive      *bool   `json:"is_active"`
}

// SupplierResponse represents a supplier
type SupplierResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	NameEn        string    `json:"name_en,omitempty"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	ContactPerson string    `json:"contact_person,omitempty"`
	TaxID         string    `json:"tax_id,omitempty"`
	Address       string    `json:"address,omitempty"`
	Remarks       string    `json:"remarks,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ==================== Company DTOs ====================

// CreateCompanyRequest creates a company
type CreateCompanyRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	TaxID   string `json:"tax_id" binding:"max=50"`
	Address string `json:"address" binding:"max=500"`
}

// CompanyResponse represents a company
type CompanyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id,omitempty"`
	Address   string    `json:"address,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// DirectoryListFilter is the list query of users, suppliers and companies
type DirectoryListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
}

// ToUserResponse converts a domain user
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Role:          string(u.Role),
		ApprovalLimit: u.ApprovalLimit,
		ManagerID:     u.ManagerID,
		IsActive:      u.Active,
		LastLoginAt:   u.LastLoginAt,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// ToSupplierResponse converts a domain supplier
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		NameEn:        s.NameEn,
		Email:         s.Email,
		Phone:         s.Phone,
		ContactPerson: s.ContactPerson,
		TaxID:         s.TaxID,
		Address:       s.Address,
		Remarks:       s.Remarks,
		IsActive:      s.Active,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ToCompanyResponse converts a domain company
func ToCompanyResponse(c *partner.Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Address:   c.Address,
		IsActive:  c.Active,
		CreatedAt: c.CreatedAt,
	}
}
