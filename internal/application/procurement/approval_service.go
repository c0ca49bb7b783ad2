package procurement

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/umitgh/procurement-system/internal/domain/identity"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
	"github.com/umitgh/procurement-system/internal/domain/shared"
	"github.com/umitgh/procurement-system/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// Decision outcome messages
const (
	MessageApprovalGranted  = "Approval granted"
	MessageApprovalRejected = "Approval rejected"
)

// ApprovalService drives the approval state machine
type ApprovalService struct {
	orderRepo       procurement.PurchaseOrderRepository
	approvalRepo    procurement.ApprovalRepository
	resolver        *procurement.ChainResolver
	userRepo        identity.UserRepository
	eventPublisher  shared.EventPublisher
	businessMetrics *telemetry.BusinessMetrics
	logger          *zap.Logger
}

// NewApprovalService creates a new ApprovalService
func NewApprovalService(
	orderRepo procurement.PurchaseOrderRepository,
	approvalRepo procurement.ApprovalRepository,
	resolver *procurement.ChainResolver,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *ApprovalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApprovalService{
		orderRepo:    orderRepo,
		approvalRepo: approvalRepo,
		resolver:     resolver,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// SetEventPublisher enables direct publishing after commit. Without it the
// events reach handlers through the outbox only.
func (s *ApprovalService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetBusinessMetrics sets the business metrics collector
func (s *ApprovalService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// InitializeApprovals resolves the approval chain of a submitted order and
// creates its approval records. It returns the number of approvals created;
// zero means the order was approved on the spot. The creator and total
// amount the chain is resolved from are read from the stored order, so a
// caller passes only its id.
func (s *ApprovalService) InitializeApprovals(ctx context.Context, orderID uuid.UUID) (int, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return 0, err
	}
	if !order.IsPendingApproval() {
		return 0, procurement.ErrPurchaseOrderNotPending
	}

	chain, err := s.resolver.ResolveChain(ctx, order.CreatedByID, order.TotalAmount)
	if err != nil {
		return 0, err
	}

	if chain.IsEmpty() {
		if err := order.Approve(true); err != nil {
			return 0, err
		}
		events := order.GetDomainEvents()
		if err := s.orderRepo.SaveWithLockAndEvents(ctx, order, events); err != nil {
			return 0, err
		}
		order.ClearDomainEvents()

		s.logger.Info("Purchase order auto-approved",
			zap.String("po_id", order.ID.String()),
			zap.String("po_number", order.PONumber),
		)
		s.publish(ctx, events)
		if s.businessMetrics != nil {
			s.businessMetrics.RecordSubmission(ctx, order.TotalAmount, 0)
			s.businessMetrics.RecordFinalized(ctx, string(order.Status))
		}
		return 0, nil
	}

	approvals := procurement.NewApprovals(order.ID, chain)
	var events []shared.DomainEvent
	if req := procurement.FirstLevelRequest(order, approvals); req != nil {
		events = append(events, req)
	}
	if err := s.approvalRepo.CreateBatch(ctx, order.ID, approvals, events); err != nil {
		return 0, err
	}

	s.logger.Info("Approval chain created",
		zap.String("po_id", order.ID.String()),
		zap.Int("levels", len(chain)),
	)
	s.publish(ctx, events)
	if s.businessMetrics != nil {
		s.businessMetrics.RecordSubmission(ctx, order.TotalAmount, len(chain))
	}
	return len(approvals), nil
}

// ProcessApproval records actor's decision on one approval and advances the
// order when the decision completes a level
func (s *ApprovalService) ProcessApproval(ctx context.Context, actor Actor, approvalID uuid.UUID, req DecisionRequest) (*DecisionResponse, error) {
	cmd := procurement.DecisionCommand{
		ApprovalID: approvalID,
		ActorID:    actor.ID,
		Decision:   procurement.Decision(req.Decision),
		Comments:   req.Comments,
	}

	rec, err := s.approvalRepo.Decide(ctx, approvalID, func(order *procurement.PurchaseOrder, approvals []*procurement.Approval) (*procurement.DecisionRecord, error) {
		return procurement.ApplyDecision(order, approvals, cmd)
	})
	if err != nil {
		if errors.Is(err, procurement.ErrApprovalAlreadyProcessed) {
			s.logger.Info("Approval decision lost to a concurrent decision",
				zap.String("approval_id", approvalID.String()),
				zap.String("actor_id", actor.ID.String()),
			)
		}
		return nil, err
	}

	s.logger.Info("Approval decided",
		zap.String("approval_id", approvalID.String()),
		zap.String("po_id", rec.Approval.PurchaseOrderID.String()),
		zap.String("decision", string(rec.Approval.Status)),
		zap.String("po_status", string(rec.NewStatus)),
	)
	s.publish(ctx, rec.Events)

	if s.businessMetrics != nil {
		s.businessMetrics.RecordDecision(ctx, string(rec.Approval.Status), rec.Approval.Level)
		if rec.Order != nil {
			s.businessMetrics.RecordFinalized(ctx, string(rec.NewStatus))
		}
	}

	message := MessageApprovalGranted
	if cmd.Decision == procurement.DecisionReject {
		message = MessageApprovalRejected
	}
	return &DecisionResponse{POStatus: string(rec.NewStatus), Message: message}, nil
}

// ListPendingForApprover returns the approvals actor can decide right now,
// each with its order
func (s *ApprovalService) ListPendingForApprover(ctx context.Context, actor Actor) ([]ApprovalResponse, error) {
	approvals, err := s.approvalRepo.FindActionableForApprover(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	out := make([]ApprovalResponse, 0, len(approvals))
	for _, a := range approvals {
		resp := ToApprovalResponse(a)
		order, err := s.orderRepo.FindByID(ctx, a.PurchaseOrderID)
		if err != nil {
			return nil, err
		}
		orderResp := ToPurchaseOrderResponse(order)
		resp.PurchaseOrder = &orderResp
		out = append(out, resp)
	}
	return out, nil
}

// CountPendingForApprover counts the approvals actor can decide right now
func (s *ApprovalService) CountPendingForApprover(ctx context.Context, actor Actor) (int64, error) {
	return s.approvalRepo.CountActionableForApprover(ctx, actor.ID)
}

// ListForOrder returns the approval history of an order, lowest level first
func (s *ApprovalService) ListForOrder(ctx context.Context, actor Actor, orderID uuid.UUID) ([]ApprovalResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	approvals, err := s.approvalRepo.FindByPurchaseOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if !canView(actor, order, approvals) {
		return nil, procurement.ErrNotOwner
	}

	names := s.approverNames(ctx, approvals)
	out := make([]ApprovalResponse, len(approvals))
	for i, a := range approvals {
		out[i] = ToApprovalResponse(a)
		out[i].ApproverName = names[a.ApproverID]
	}
	return out, nil
}

func (s *ApprovalService) approverNames(ctx context.Context, approvals []*procurement.Approval) map[uuid.UUID]string {
	ids := make([]uuid.UUID, 0, len(approvals))
	for _, a := range approvals {
		ids = append(ids, a.ApproverID)
	}
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names
	}
	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Warn("Failed to load approver names", zap.Error(err))
		return names
	}
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names
}

func (s *ApprovalService) publish(ctx context.Context, events []shared.DomainEvent) {
	publishAfterCommit(ctx, s.eventPublisher, s.logger, events)
}

// publishAfterCommit hands events to the direct publisher when one is set.
// Delivery failures are logged; the committed state stands.
func publishAfterCommit(ctx context.Context, publisher shared.EventPublisher, logger *zap.Logger, events []shared.DomainEvent) {
	if publisher == nil || len(events) == 0 {
		return
	}
	if err := publisher.Publish(ctx, events...); err != nil {
		logger.Error("Failed to publish domain events",
			zap.Int("event_count", len(events)),
			zap.Error(err),
		)
	}
}

// canView reports whether actor may see an order. Approvers assigned to the
// order see it regardless of role.
func canView(actor Actor, order *procurement.PurchaseOrder, approvals []*procurement.Approval) bool {
	if actor.Role.SeesAllPurchaseOrders() || order.CreatedByID == actor.ID {
		return true
	}
	for _, a := range approvals {
		if a.ApproverID == actor.ID {
			return true
		}
	}
	return false
}
