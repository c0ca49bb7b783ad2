package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/umitgh/procurement-system/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 10

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User is a directory entry. ApprovalLimit is the largest purchase order
// total the user may approve alone; ManagerID points one step up the
// reporting line.
type User struct {
	shared.BaseAggregateRoot
	Email         string
	Name          string
	PasswordHash  string
	Role          Role
	ApprovalLimit decimal.Decimal
	ManagerID     *uuid.UUID
	Active        bool
	LastLoginAt   *time.Time
}

// NewUser creates an active user with a hashed password
func NewUser(email, name, password string, role Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	if role == "" {
		role = RoleUser
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role: "+string(role))
	}
	if password == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		Name:              name,
		PasswordHash:      hash,
		Role:              role,
		ApprovalLimit:     decimal.Zero,
		Active:            true,
	}, nil
}

// SetApprovalLimit sets the single-handed approval limit
func (u *User) SetApprovalLimit(limit decimal.Decimal) error {
	if limit.IsNegative() {
		return shared.NewDomainError("INVALID_APPROVAL_LIMIT", "Approval limit cannot be negative")
	}
	u.ApprovalLimit = limit
	u.Touch()
	u.IncrementVersion()
	return nil
}

// SetManager links the user to a manager. A nil id clears the link.
func (u *User) SetManager(managerID *uuid.UUID) error {
	if managerID != nil && *managerID == u.ID {
		return shared.NewDomainError("INVALID_MANAGER", "User cannot be their own manager")
	}
	u.ManagerID = managerID
	u.Touch()
	u.IncrementVersion()
	return nil
}

// SetRole changes the role
func (u *User) SetRole(role Role) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown role: "+string(role))
	}
	u.Role = role
	u.Touch()
	u.IncrementVersion()
	return nil
}

// Rename changes the display name
func (u *User) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	u.Name = name
	u.Touch()
	u.IncrementVersion()
	return nil
}

// SetPassword replaces the password hash
func (u *User) SetPassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	hash, err := hashPassword(password)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = hash
	u.Touch()
	u.IncrementVersion()
	return nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Activate marks the user active
func (u *User) Activate() {
	u.Active = true
	u.Touch()
	u.IncrementVersion()
}

// Deactivate marks the user inactive. Inactive users end approval chains.
func (u *User) Deactivate() {
	u.Active = false
	u.Touch()
	u.IncrementVersion()
}

// IsActive returns whether the user is active
func (u *User) IsActive() bool {
	return u.Active
}

// IsAdmin reports administrative rights
func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}

// CanApproveAlone reports whether amount is within the user's limit
func (u *User) CanApproveAlone(amount decimal.Decimal) bool {
	return u.ApprovalLimit.GreaterThanOrEqual(amount)
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
