package procurement

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/umitgh/procurement-system/internal/domain/identity"
	"github.com/umitgh/procurement-system/internal/domain/shared"
)

// DefaultMaxChainDepth caps how many managers are walked
const DefaultMaxChainDepth = 4

// ChainLink is one approver in a resolved chain
type ChainLink struct {
	ApproverID    uuid.UUID
	Name          string
	Email         string
	Level         int
	ApprovalLimit decimal.Decimal
}

// ApprovalChain is the ordered list of approvers, level 1 first. An empty
// chain means the creator may approve alone.
type ApprovalChain []ChainLink

// IsEmpty reports whether no approval is required
func (c ApprovalChain) IsEmpty() bool {
	return len(c) == 0
}

// UserDirectory is the lookup the resolver walks
type UserDirectory interface {
	FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error)
}

// ChainResolver walks the manager hierarchy to build approval chains
type ChainResolver struct {
	users    UserDirectory
	maxDepth int
}

// NewChainResolver creates a resolver. A non-positive maxDepth selects
// DefaultMaxChainDepth.
func NewChainResolver(users UserDirectory, maxDepth int) *ChainResolver {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxChainDepth
	}
	return &ChainResolver{users: users, maxDepth: maxDepth}
}

// MaxDepth returns the configured cap
func (r *ChainResolver) MaxDepth() int {
	return r.maxDepth
}

// ResolveChain returns the approvers needed for amount. The walk stops at
// the first manager whose limit covers the amount, at a missing or inactive
// manager, at a manager already visited, or after maxDepth managers.
func (r *ChainResolver) ResolveChain(ctx context.Context, creatorID uuid.UUID, amount decimal.Decimal) (ApprovalChain, error) {
	creator, err := r.users.FindByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrCreatorNotFound
		}
		return nil, fmt.Errorf("load creator: %w", err)
	}
	if creator.CanApproveAlone(amount) {
		return ApprovalChain{}, nil
	}

	chain := make(ApprovalChain, 0, r.maxDepth)
	visited := map[uuid.UUID]bool{creator.ID: true}
	next := creator.ManagerID

	for next != nil && len(chain) < r.maxDepth {
		if visited[*next] {
			break
		}
		manager, err := r.users.FindByID(ctx, *next)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				break
			}
			return nil, fmt.Errorf("load manager %s: %w", *next, err)
		}
		if !manager.IsActive() {
			break
		}
		visited[manager.ID] = true

		chain = append(chain, ChainLink{
			ApproverID:    manager.ID,
			Name:          manager.Name,
			Email:         manager.Email,
			Level:         len(chain) + 1,
			ApprovalLimit: manager.ApprovalLimit,
		})
		if manager.CanApproveAlone(amount) {
			break
		}
		next = manager.ManagerID
	}

	return chain, nil
}
