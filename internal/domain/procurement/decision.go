package procurement

import (
	"github.com/google/uuid"
	"github.com/umitgh/procurement-system/internal/domain/shared"
)

// DecisionCommand is one approver's verdict on one approval
type DecisionCommand struct {
	ApprovalID uuid.UUID
	ActorID    uuid.UUID
	Decision   Decision
	Comments   string
}

// DecisionRecord is everything a decision writes. Order is nil when the
// order itself did not change state.
type DecisionRecord struct {
	Approval  *Approval
	Order     *PurchaseOrder
	NewStatus Status
	Events    []shared.DomainEvent
}

// ApplyDecision validates cmd against the order and its approvals and
// applies it in memory. Preconditions are checked in a fixed order and each
// has its own error.
func ApplyDecision(order *PurchaseOrder, approvals []*Approval, cmd DecisionCommand) (*DecisionRecord, error) {
	var target *Approval
	for _, a := range approvals {
		if a.ID == cmd.ApprovalID {
			target = a
			break
		}
	}
	if target == nil {
		return nil, ErrApprovalNotFound
	}
	if target.ApproverID != cmd.ActorID {
		return nil, ErrNotAssignedApprover
	}
	if !target.IsPending() {
		return nil, ErrApprovalAlreadyProcessed
	}
	if !order.IsPendingApproval() {
		return nil, ErrPurchaseOrderNotPending
	}
	if !lowerLevelsApproved(approvals, target.Level) {
		return nil, ErrApprovalLevelNotActive
	}
	if _, err := ParseDecision(string(cmd.Decision)); err != nil {
		return nil, err
	}

	target.decide(cmd.Decision, cmd.Comments)
	rec := &DecisionRecord{
		Approval:  target,
		NewStatus: StatusPendingApproval,
		Events:    []shared.DomainEvent{NewApprovalDecidedEvent(order, target)},
	}

	if cmd.Decision == DecisionReject {
		if err := order.Reject(cmd.ActorID, cmd.Comments); err != nil {
			return nil, err
		}
		return rec.withOrder(order), nil
	}

	if !levelApproved(approvals, target.Level) {
		return rec, nil
	}

	if next := nextLevel(approvals, target.Level); next > 0 {
		rec.Events = append(rec.Events, NewApprovalRequestedEvent(order, next, approversAt(approvals, next)))
		return rec, nil
	}

	if err := order.Approve(false); err != nil {
		return nil, err
	}
	return rec.withOrder(order), nil
}

func (r *DecisionRecord) withOrder(order *PurchaseOrder) *DecisionRecord {
	r.Order = order
	r.NewStatus = order.Status
	r.Events = append(r.Events, order.GetDomainEvents()...)
	return r
}

// FirstLevelRequest returns the event announcing the lowest level of a
// freshly created approval batch.
func FirstLevelRequest(order *PurchaseOrder, approvals []*Approval) *ApprovalRequestedEvent {
	first := nextLevel(approvals, 0)
	if first == 0 {
		return nil
	}
	return NewApprovalRequestedEvent(order, first, approversAt(approvals, first))
}

// IsActionable reports whether a pending approval can be decided now
func IsActionable(order *PurchaseOrder, approvals []*Approval, a *Approval) bool {
	return a.IsPending() && order.IsPendingApproval() && lowerLevelsApproved(approvals, a.Level)
}
