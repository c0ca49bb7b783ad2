package procurement

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/umitgh/procurement-system/internal/domain/partner"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
	"github.com/umitgh/procurement-system/internal/domain/shared"
	"go.uber.org/zap"
)

// TopSuppliersLimit is the size of the dashboard top suppliers list
const TopSuppliersLimit = 10

// SpendMonitor reports approved spend per supplier and month
type SpendMonitor struct {
	spendRepo    procurement.SpendRepository
	supplierRepo partner.SupplierRepository
	threshold    decimal.Decimal
	location     *time.Location
	logger       *zap.Logger
}

// NewSpendMonitor creates a SpendMonitor. A non-positive threshold selects
// procurement.DefaultSpendThreshold and a nil location selects UTC.
func NewSpendMonitor(
	spendRepo procurement.SpendRepository,
	supplierRepo partner.SupplierRepository,
	threshold decimal.Decimal,
	location *time.Location,
	logger *zap.Logger,
) *SpendMonitor {
	if !threshold.IsPositive() {
		threshold = procurement.DefaultSpendThreshold
	}
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SpendMonitor{
		spendRepo:    spendRepo,
		supplierRepo: supplierRepo,
		threshold:    threshold,
		location:     location,
		logger:       logger,
	}
}

// Threshold returns the configured monthly threshold
func (m *SpendMonitor) Threshold() decimal.Decimal {
	return m.threshold
}

// CurrentMonth is the month containing now in the configured zone
func (m *SpendMonitor) CurrentMonth() procurement.Month {
	return procurement.MonthOf(shared.Now(), m.location)
}

// MonthlySpend totals supplierID's approved orders for month
func (m *SpendMonitor) MonthlySpend(ctx context.Context, supplierID uuid.UUID, month procurement.Month) (procurement.MonthlySpend, error) {
	from, to := month.Window(m.location)
	sum, err := m.spendRepo.SumApproved(ctx, supplierID, from, to)
	if err != nil {
		return procurement.MonthlySpend{}, err
	}
	return procurement.NewMonthlySpend(supplierID, month, sum.Total, sum.OrderCount, m.threshold), nil
}

// SupplierSpend answers the per-supplier spend endpoint. An empty month
// means the current one.
func (m *SpendMonitor) SupplierSpend(ctx context.Context, supplierID uuid.UUID, month string) (*MonthlySpendResponse, error) {
	target := m.CurrentMonth()
	if month != "" {
		parsed, err := procurement.ParseMonth(month)
		if err != nil {
			return nil, err
		}
		target = parsed
	}
	if _, err := m.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return nil, err
	}
	spend, err := m.MonthlySpend(ctx, supplierID, target)
	if err != nil {
		return nil, err
	}
	resp := ToMonthlySpendResponse(spend)
	return &resp, nil
}

// annotateIfExceeded appends the spend alert remark to an order whose
// supplier is already at or over threshold this month. Lookup failures are
// logged and leave the order untouched.
func (m *SpendMonitor) annotateIfExceeded(ctx context.Context, order *procurement.PurchaseOrder) bool {
	spend, err := m.MonthlySpend(ctx, order.SupplierID, m.CurrentMonth())
	if err != nil {
		m.logger.Warn("Failed to compute supplier monthly spend",
			zap.String("po_id", order.ID.String()),
			zap.String("supplier_id", order.SupplierID.String()),
			zap.Error(err),
		)
		return false
	}
	if !spend.ExceedsThreshold {
		return false
	}
	order.AppendRemark(spend.Annotation())
	return true
}

// Monitoring builds the current month's supplier spend overview
func (m *SpendMonitor) Monitoring(ctx context.Context) (*SupplierMonitoringResponse, error) {
	month := m.CurrentMonth()
	from, to := month.Window(m.location)
	orders, err := m.spendRepo.ApprovedInWindow(ctx, from, to)
	if err != nil {
		return nil, err
	}

	entries := make(map[uuid.UUID]*SupplierMonitoringEntry)
	var supplierIDs []uuid.UUID
	grandTotal := decimal.Zero
	for _, o := range orders {
		e, ok := entries[o.SupplierID]
		if !ok {
			e = &SupplierMonitoringEntry{SupplierID: o.SupplierID, TotalSpent: decimal.Zero}
			entries[o.SupplierID] = e
			supplierIDs = append(supplierIDs, o.SupplierID)
		}
		e.TotalSpent = e.TotalSpent.Add(o.TotalAmount)
		e.POCount++
		e.PurchaseOrders = append(e.PurchaseOrders, SupplierMonitoringOrderLine{
			ID:          o.ID,
			PONumber:    o.PONumber,
			TotalAmount: o.TotalAmount,
			ApprovedAt:  o.ApprovedAt,
		})
		grandTotal = grandTotal.Add(o.TotalAmount)
	}

	if len(supplierIDs) > 0 {
		suppliers, err := m.supplierRepo.FindByIDs(ctx, supplierIDs)
		if err != nil {
			return nil, err
		}
		for _, s := range suppliers {
			if e, ok := entries[s.ID]; ok {
				e.SupplierName = s.Name
				e.SupplierEmail = s.Email
			}
		}
	}

	all := make([]SupplierMonitoringEntry, 0, len(entries))
	for _, id := range supplierIDs {
		e := entries[id]
		e.ExceedsThreshold = e.TotalSpent.GreaterThanOrEqual(m.threshold)
		all = append(all, *e)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].TotalSpent.GreaterThan(all[j].TotalSpent)
	})

	exceeding := make([]SupplierMonitoringEntry, 0)
	for _, e := range all {
		if e.ExceedsThreshold {
			exceeding = append(exceeding, e)
		}
	}

	return &SupplierMonitoringResponse{
		Summary: SupplierMonitoringSummary{
			CurrentMonth:                month.String(),
			Threshold:                   m.threshold,
			TotalSuppliers:              len(all),
			SuppliersExceedingThreshold: len(exceeding),
			TotalSpentThisMonth:         grandTotal,
		},
		ExceedingSuppliers: exceeding,
		AllSuppliers:       all,
	}, nil
}

// TopSuppliers ranks suppliers by all-time approved spend. Plain users only
// see spend from their own orders.
func (m *SpendMonitor) TopSuppliers(ctx context.Context, actor Actor) ([]TopSupplierResponse, error) {
	q := procurement.SpendQuery{Limit: TopSuppliersLimit}
	if !actor.Role.SeesAllPurchaseOrders() {
		q.CreatedByID = &actor.ID
	}
	spends, err := m.spendRepo.SumApprovedBySupplier(ctx, q)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(spends))
	for i, s := range spends {
		ids[i] = s.SupplierID
	}
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) > 0 {
		suppliers, err := m.supplierRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, s := range suppliers {
			names[s.ID] = s.Name
		}
	}

	out := make([]TopSupplierResponse, len(spends))
	for i, s := range spends {
		out[i] = TopSupplierResponse{
			SupplierID:   s.SupplierID,
			SupplierName: names[s.SupplierID],
			TotalSpent:   s.Total,
			POCount:      s.OrderCount,
		}
	}
	return out, nil
}
