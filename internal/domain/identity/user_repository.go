package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/umitgh/procurement-system/internal/domain/shared"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by ID; shared.ErrNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByIDs loads several users at once, silently skipping unknown ids
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindAll returns users with pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]*User, int64, error)

	// ExistsByEmail checks if an email already exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error
}
