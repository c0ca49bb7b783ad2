package procurement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/umitgh/procurement-system/internal/domain/identity"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
	"github.com/umitgh/procurement-system/internal/domain/shared"
	"go.uber.org/zap"
)

var mockCtx = mock.Anything

type approvalFixture struct {
	orders    *MockPurchaseOrderRepository
	approvals *MockApprovalRepository
	users     *MockUserRepository
	publisher *MockEventPublisher
	service   *ApprovalService
}

func newApprovalFixture() *approvalFixture {
	f := &approvalFixture{
		orders:    new(MockPurchaseOrderRepository),
		approvals: new(MockApprovalRepository),
		users:     new(MockUserRepository),
		publisher: new(MockEventPublisher),
	}
	resolver := procurement.NewChainResolver(f.users, procurement.DefaultMaxChainDepth)
	f.service = NewApprovalService(f.orders, f.approvals, resolver, f.users, zap.NewNop())
	f.service.SetEventPublisher(f.publisher)
	return f
}

func (f *approvalFixture) published() []shared.DomainEvent {
	return publishedEvents(f.publisher)
}

func TestInitializeApprovals_AutoApprovesWithinCreatorLimit(t *testing.T) {
	at := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)
	defer shared.SetClock(shared.FixedClock(at))()

	f := newApprovalFixture()
	h := newABC()
	h.register(f.users)
	order := newPendingOrder(t, h.a.ID, 800)

	f.orders.On("FindByID", mockCtx, order.ID).Return(order, nil)
	f.orders.On("SaveWithLockAndEvents", mockCtx, order, mock.Anything).Return(nil)
	f.publisher.On("Publish", mockCtx, mock.Anything).Return(nil)

	count, err := f.service.InitializeApprovals(context.Background(), order.ID)

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, procurement.StatusApproved, order.Status)
	require.NotNil(t, order.ApprovedAt)
	assert.Equal(t, at, *order.ApprovedAt)

	saved := f.orders.Calls[1].Arguments.Get(2).([]shared.DomainEvent)
	require.Len(t, saved, 1)
	approved, ok := saved[0].(*procurement.PurchaseOrderApprovedEvent)
	require.True(t, ok)
	assert.True(t, approved.AutoApproved)
	assert.Equal(t, []string{procurement.EventTypePurchaseOrderApproved}, eventTypes(f.published()))
	f.approvals.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInitializeApprovals_CreatesChainAndRequestsFirstLevel(t *testing.T) {
	f := newApprovalFixture()
	h := newABC()
	h.register(f.users)
	order := newPendingOrder(t, h.a.ID, 75000)

	f.orders.On("FindByID", mockCtx, order.ID).Return(order, nil)
	f.approvals.On("CreateBatch", mockCtx, order.ID, mock.Anything, mock.Anything).Return(nil)
	f.publisher.On("Publish", mockCtx, mock.Anything).Return(nil)

	count, err := f.service.InitializeApprovals(context.Background(), order.ID)

	require.NoError(t, err)
	assert.Equal(t, 2, count)

	call := f.approvals.Calls[0]
	created := call.Arguments.Get(2).([]*procurement.Approval)
	require.Len(t, created, 2)
	assert.Equal(t, h.b.ID, created[0].ApproverID)
	assert.Equal(t, 1, created[0].Level)
	assert.Equal(t, h.c.ID, created[1].ApproverID)
	assert.Equal(t, 2, created[1].Level)
	for _, a := range created {
		assert.Equal(t, procurement.ApprovalPending, a.Status)
	}

	events := call.Arguments.Get(3).([]shared.DomainEvent)
	require.Len(t, events, 1)
	req := events[0].(*procurement.ApprovalRequestedEvent)
	assert.Equal(t, 1, req.Level)
	assert.Equal(t, []uuid.UUID{h.b.ID}, req.ApproverIDs)
	assert.Equal(t, procurement.StatusPendingApproval, order.Status)
}

func TestInitializeApprovals_RejectsOrderNotPending(t *testing.T) {
	f := newApprovalFixture()
	order := newDraftOrder(t, uuid.New(), uuid.New(), uuid.New(), 100)
	f.orders.On("FindByID", mockCtx, order.ID).Return(order, nil)

	_, err := f.service.InitializeApprovals(context.Background(), order.ID)

	assert.ErrorIs(t, err, procurement.ErrPurchaseOrderNotPending)
}

func TestInitializeApprovals_PropagatesBatchConflict(t *testing.T) {
	f := newApprovalFixture()
	h := newABC()
	h.register(f.users)
	order := newPendingOrder(t, h.a.ID, 75000)

	f.orders.On("FindByID", mockCtx, order.ID).Return(order, nil)
	f.approvals.On("CreateBatch", mockCtx, order.ID, mock.Anything, mock.Anything).
		Return(procurement.ErrApprovalsAlreadyInitialized)

	_, err := f.service.InitializeApprovals(context.Background(), order.ID)

	assert.ErrorIs(t, err, procurement.ErrApprovalsAlreadyInitialized)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestInitializeApprovals_MissingCreator(t *testing.T) {
	f := newApprovalFixture()
	order := newPendingOrder(t, uuid.New(), 500)
	f.orders.On("FindByID", mockCtx, order.ID).Return(order, nil)
	f.users.On("FindByID", mockCtx, order.CreatedByID).Return(nil, identity.ErrUserNotFound)

	_, err := f.service.InitializeApprovals(context.Background(), order.ID)

	assert.ErrorIs(t, err, procurement.ErrCreatorNotFound)
}

// twoLevel is an order pending at levels 1 (approver b) and 2 (approver c)
func twoLevel(t *testing.T, h abcHierarchy) (*procurement.PurchaseOrder, []*procurement.Approval) {
	t.Helper()
	order := newPendingOrder(t, h.a.ID, 75000)
	approvals := procurement.NewApprovals(order.ID, procurement.ApprovalChain{
		{ApproverID: h.b.ID, Level: 1},
		{ApproverID: h.c.ID, Level: 2},
	})
	return order, approvals
}

func TestProcessApproval_WalksTheChainToApproval(t *testing.T) {
	f := newApprovalFixture()
	h := newABC()
	order, approvals := twoLevel(t, h)
	f.approvals.On("Decide", mockCtx, approvals[0].ID).Return(order, approvals, nil)
	f.approvals.On("Decide", mockCtx, approvals[1].ID).Return(order, approvals, nil)
	f.publisher.On("Publish", mockCtx, mock.Anything).Return(nil)

	first, err := f.service.ProcessApproval(context.Background(), Actor{ID: h.b.ID, Role: identity.RoleManager},
		approvals[0].ID, DecisionRequest{Decision: "APPROVED", Comments: "fine"})
	require.NoError(t, err)
	assert.Equal(t, &DecisionResponse{POStatus: "PENDING_APPROVAL", Message: MessageApprovalGranted}, first)
	assert.Equal(t, []string{procurement.EventTypeApprovalDecided, procurement.EventTypeApprovalRequested}, eventTypes(f.published()))

	order.ClearDomainEvents()
	second, err := f.service.ProcessApproval(context.Background(), Actor{ID: h.c.ID, Role: identity.RoleManager},
		approvals[1].ID, DecisionRequest{Decision: "APPROVED"})
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", second.POStatus)
	assert.Equal(t, procurement.StatusApproved, order.Status)

	var approvedEvents int
	for _, e := range f.published() {
		if e.EventType() == procurement.EventTypePurchaseOrderApproved {
			approvedEvents++
		}
	}
	assert.Equal(t, 1, approvedEvents)
}

func TestProcessApproval_RejectionIsTerminal(t *testing.T) {
	f := newApprovalFixture()
	h := newABC()
	order, approvals := twoLevel(t, h)
	f.approvals.On("Decide", mockCtx, approvals[0].ID).Return(order, approvals, nil)
	f.publisher.On("Publish", mockCtx, mock.Anything).Return(nil)

	resp, err := f.service.ProcessApproval(context.Background(), Actor{ID: h.b.ID},
		approvals[0].ID, DecisionRequest{Decision: "REJECTED", Comments: "too expensive"})

	require.NoError(t, err)
	assert.Equal(t, &DecisionResponse{POStatus: "REJECTED", Message: MessageApprovalRejected}, resp)
	assert.Equal(t, procurement.StatusRejected, order.Status)
	assert.Contains(t, eventTypes(f.published()), procurement.EventTypePurchaseOrderRejected)
}

func TestProcessApproval_DistinctPreconditionErrors(t *testing.T) {
	h := newABC()

	t.Run("not the assigned approver", func(t *testing.T) {
		f := newApprovalFixture()
		order, approvals := twoLevel(t, h)
		f.approvals.On("Decide", mockCtx, approvals[0].ID).Return(order, approvals, nil)

		_, err := f.service.ProcessApproval(context.Background(), Actor{ID: h.c.ID}, approvals[0].ID, DecisionRequest{Decision: "APPROVED"})
		assert.ErrorIs(t, err, procurement.ErrNotAssignedApprover)
	})

	t.Run("already processed", func(t *testing.T) {
		f := newApprovalFixture()
		order, approvals := twoLevel(t, h)
		f.approvals.On("Decide", mockCtx, approvals[0].ID).Return(order, approvals, nil)
		f.publisher.On("Publish", mockCtx, mock.Anything).Return(nil)
		actor := Actor{ID: h.b.ID}

		_, err := f.service.ProcessApproval(context.Background(), actor, approvals[0].ID, DecisionRequest{Decision: "APPROVED"})
		require.NoError(t, err)
		_, err = f.service.ProcessApproval(context.Background(), actor, approvals[0].ID, DecisionRequest{Decision: "APPROVED"})
		assert.ErrorIs(t, err, procurement.ErrApprovalAlreadyProcessed)
	})

	t.Run("order no longer pending", func(t *testing.T) {
		f := newApprovalFixture()
		order, approvals := twoLevel(t, h)
		require.NoError(t, order.Cancel(h.a.ID, false))
		f.approvals.On("Decide", mockCtx, approvals[0].ID).Return(order, approvals, nil)

		_, err := f.service.ProcessApproval(context.Background(), Actor{ID: h.b.ID}, approvals[0].ID, DecisionRequest{Decision: "APPROVED"})
		assert.ErrorIs(t, err, procurement.ErrPurchaseOrderNotPending)
	})

	t.Run("level not yet active", func(t *testing.T) {
		f := newApprovalFixture()
		order, approvals := twoLevel(t, h)
		f.approvals.On("Decide", mockCtx, approvals[1].ID).Return(order, approvals, nil)

		_, err := f.service.ProcessApproval(context.Background(), Actor{ID: h.c.ID}, approvals[1].ID, DecisionRequest{Decision: "APPROVED"})
		assert.ErrorIs(t, err, procurement.ErrApprovalLevelNotActive)
	})

	t.Run("approval missing", func(t *testing.T) {
		f := newApprovalFixture()
		id := uuid.New()
		f.approvals.On("Decide", mockCtx, id).Return(nil, nil, procurement.ErrApprovalNotFound)

		_, err := f.service.ProcessApproval(context.Background(), Actor{ID: h.b.ID}, id, DecisionRequest{Decision: "APPROVED"})
		assert.ErrorIs(t, err, procurement.ErrApprovalNotFound)
	})
}

func TestProcessApproval_PublishFailureDoesNotUndoDecision(t *testing.T) {
	f := newApprovalFixture()
	h := newABC()
	order, approvals := twoLevel(t, h)
	f.approvals.On("Decide", mockCtx, approvals[0].ID).Return(order, approvals, nil)
	f.publisher.On("Publish", mockCtx, mock.Anything).Return(errors.New("bus closed"))

	resp, err := f.service.ProcessApproval(context.Background(), Actor{ID: h.b.ID}, approvals[0].ID, DecisionRequest{Decision: "APPROVED"})

	require.NoError(t, err)
	assert.Equal(t, "PENDING_APPROVAL", resp.POStatus)
	assert.Equal(t, procurement.ApprovalApproved, approvals[0].Status)
}

func TestListForOrder_NamesApproversAndChecksVisibility(t *testing.T) {
	f := newApprovalFixture()
	h := newABC()
	order, approvals := twoLevel(t, h)
	f.orders.On("FindByID", mockCtx, order.ID).Return(order, nil)
	f.approvals.On("FindByPurchaseOrder", mockCtx, order.ID).Return(approvals, nil)
	f.users.On("FindByIDs", mockCtx, mock.Anything).Return([]*identity.User{h.b, h.c}, nil)

	history, err := f.service.ListForOrder(context.Background(), Actor{ID: h.c.ID, Role: identity.RoleUser}, order.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "bob", history[0].ApproverName)
	assert.Equal(t, "carol", history[1].ApproverName)

	_, err = f.service.ListForOrder(context.Background(), Actor{ID: uuid.New(), Role: identity.RoleUser}, order.ID)
	assert.ErrorIs(t, err, procurement.ErrNotOwner)
}

func TestListPendingForApprover_AttachesOrders(t *testing.T) {
	f := newApprovalFixture()
	h := newABC()
	order, approvals := twoLevel(t, h)
	f.approvals.On("FindActionableForApprover", mockCtx, h.b.ID).Return(approvals[:1], nil)
	f.orders.On("FindByID", mockCtx, order.ID).Return(order, nil)

	pending, err := f.service.ListPendingForApprover(context.Background(), Actor{ID: h.b.ID})

	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.NotNil(t, pending[0].PurchaseOrder)
	assert.Equal(t, order.PONumber, pending[0].PurchaseOrder.PONumber)
}
