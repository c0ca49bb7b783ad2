package procurement

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/umitgh/procurement-system/internal/domain/shared"
)

// Approval is one approver's vote at one level of a purchase order
type Approval struct {
	shared.BaseEntity
	PurchaseOrderID uuid.UUID
	ApproverID      uuid.UUID
	Level           int
	Status          ApprovalStatus
	Comments        string
	RespondedAt     *time.Time
}

// NewApprovals expands a resolved chain into pending approval records
func NewApprovals(orderID uuid.UUID, chain ApprovalChain) []*Approval {
	approvals := make([]*Approval, 0, len(chain))
	for _, link := range chain {
		approvals = append(approvals, &Approval{
			BaseEntity:      shared.NewBaseEntity(),
			PurchaseOrderID: orderID,
			ApproverID:      link.ApproverID,
			Level:           link.Level,
			Status:          ApprovalPending,
		})
	}
	return approvals
}

// IsPending reports whether the approval still awaits a decision
func (a *Approval) IsPending() bool {
	return a.Status == ApprovalPending
}

func (a *Approval) decide(d Decision, comments string) {
	now := shared.Now()
	a.Status = d.approvalStatus()
	a.Comments = comments
	a.RespondedAt = &now
	a.UpdatedAt = now
}

// levelApproved reports whether every approval at level is APPROVED
func levelApproved(approvals []*Approval, level int) bool {
	found := false
	for _, a := range approvals {
		if a.Level != level {
			continue
		}
		found = true
		if a.Status != ApprovalApproved {
			return false
		}
	}
	return found
}

// lowerLevelsApproved reports whether all levels below level are cleared
func lowerLevelsApproved(approvals []*Approval, level int) bool {
	for _, a := range approvals {
		if a.Level < level && a.Status != ApprovalApproved {
			return false
		}
	}
	return true
}

// nextLevel returns the smallest level above current, or 0
func nextLevel(approvals []*Approval, current int) int {
	next := 0
	for _, a := range approvals {
		if a.Level > current && (next == 0 || a.Level < next) {
			next = a.Level
		}
	}
	return next
}

// approversAt lists the approvers of a level in a stable order
func approversAt(approvals []*Approval, level int) []uuid.UUID {
	ids := make([]uuid.UUID, 0, 1)
	for _, a := range approvals {
		if a.Level == level {
			ids = append(ids, a.ApproverID)
		}
	}
	slices.SortFunc(ids, func(x, y uuid.UUID) int { return slices.Compare(x[:], y[:]) })
	return ids
}
