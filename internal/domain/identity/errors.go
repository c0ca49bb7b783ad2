package identity

import "github.com/umitgh/procurement-system/internal/domain/shared"

var (
	ErrUserNotFound = shared.NewDomainError("USER_NOT_FOUND", "User not found")
	ErrEmailExists  = shared.NewDomainError("USER_ALREADY_EXISTS", "A user with this email already exists")
)
