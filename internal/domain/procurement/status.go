package procurement

import (
	"fmt"
	"slices"

	"github.com/umitgh/procurement-system/internal/domain/shared"
)

// Status is the lifecycle state of a purchase order
type Status string

const (
	StatusDraft           Status = "DRAFT"
	StatusPendingApproval Status = "PENDING_APPROVAL"
	StatusApproved        Status = "APPROVED"
	StatusRejected        Status = "REJECTED"
	StatusCancelled       Status = "CANCELLED"
)

// transitions is the complete set of legal status moves. Anything not listed
// is rejected.
var transitions = map[Status][]Status{
	StatusDraft:           {StatusPendingApproval},
	StatusPendingApproval: {StatusApproved, StatusRejected, StatusCancelled},
}

// IsValid checks if the status is known
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPendingApproval, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks the transition table
func (s Status) CanTransitionTo(target Status) bool {
	return slices.Contains(transitions[s], target)
}

// IsTerminal reports whether no further transition is possible
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// AllStatuses lists every status in lifecycle order
func AllStatuses() []Status {
	return []Status{StatusDraft, StatusPendingApproval, StatusApproved, StatusRejected, StatusCancelled}
}

func checkTransition(from, to Status) error {
	if from.CanTransitionTo(to) {
		return nil
	}
	return shared.NewDomainError(ErrInvalidStatusTransition.Code,
		fmt.Sprintf("Cannot move purchase order from %s to %s", from, to))
}

// ApprovalStatus is the state of a single approval record
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// Decision is an approver's verdict
type Decision string

const (
	DecisionApprove Decision = "APPROVED"
	DecisionReject  Decision = "REJECTED"
)

// ParseDecision validates a decision string
func ParseDecision(s string) (Decision, error) {
	switch d := Decision(s); d {
	case DecisionApprove, DecisionReject:
		return d, nil
	}
	return "", validationError("Decision must be APPROVED or REJECTED")
}

func (d Decision) approvalStatus() ApprovalStatus {
	if d == DecisionApprove {
		return ApprovalApproved
	}
	return ApprovalRejected
}
