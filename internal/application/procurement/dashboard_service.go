package procurement

import (
	"context"

	"github.com/umitgh/procurement-system/internal/domain/procurement"
)

// DashboardService summarizes the workflow for the caller
type DashboardService struct {
	spendRepo    procurement.SpendRepository
	approvalRepo procurement.ApprovalRepository
	spend        *SpendMonitor
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(spendRepo procurement.SpendRepository, approvalRepo procurement.ApprovalRepository, spend *SpendMonitor) *DashboardService {
	return &DashboardService{
		spendRepo:    spendRepo,
		approvalRepo: approvalRepo,
		spend:        spend,
	}
}

// Stats returns order counts, the actor's approval backlog and approved
// spend. Plain users only see figures for their own orders.
func (s *DashboardService) Stats(ctx context.Context, actor Actor) (*DashboardStatsResponse, error) {
	q := procurement.SpendQuery{}
	if !actor.Role.SeesAllPurchaseOrders() {
		q.CreatedByID = &actor.ID
	}

	counts, err := s.spendRepo.CountByStatus(ctx, q.CreatedByID)
	if err != nil {
		return nil, err
	}
	byStatus := make(map[string]int64, len(procurement.AllStatuses()))
	var total int64
	for _, st := range procurement.AllStatuses() {
		byStatus[string(st)] = counts[st]
		total += counts[st]
	}

	pending, err := s.approvalRepo.CountActionableForApprover(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	totalSpend, err := s.spendRepo.TotalApproved(ctx, q)
	if err != nil {
		return nil, err
	}

	from, to := s.spend.CurrentMonth().Window(s.spend.location)
	monthly := q
	monthly.From, monthly.To = &from, &to
	monthSpend, err := s.spendRepo.TotalApproved(ctx, monthly)
	if err != nil {
		return nil, err
	}

	return &DashboardStatsResponse{
		CountsByStatus:        byStatus,
		TotalPurchaseOrders:   total,
		PendingApprovalsForMe: pending,
		TotalSpending:         totalSpend,
		MonthlySpending:       monthSpend,
	}, nil
}
