package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
	"github.com/umitgh/procurement-system/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSpendRepository implements procurement.SpendRepository with aggregate
// queries over the purchase_orders table
type GormSpendRepository struct {
	db *gorm.DB
}

// NewGormSpendRepository creates a new GormSpendRepository
func NewGormSpendRepository(db *gorm.DB) *GormSpendRepository {
	return &GormSpendRepository{db: db}
}

type spendRow struct {
	SupplierID uuid.UUID
	Total      decimal.Decimal
	OrderCount int64
}

func (r *GormSpendRepository) approved(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.PurchaseOrderModel{}).
		Where("status = ?", procurement.StatusApproved)
}

func applySpendQuery(db *gorm.DB, q procurement.SpendQuery) *gorm.DB {
	if q.From != nil {
		db = db.Where("approved_at >= ?", q.From.UTC())
	}
	if q.To != nil {
		db = db.Where("approved_at < ?", q.To.UTC())
	}
	if q.CreatedByID != nil {
		db = db.Where("created_by_id = ?", *q.CreatedByID)
	}
	return db
}

// SumApproved totals the approved orders of one supplier in [from, to)
func (r *GormSpendRepository) SumApproved(ctx context.Context, supplierID uuid.UUID, from, to time.Time) (procurement.SupplierSpend, error) {
	var row spendRow
	if err := applySpendQuery(r.approved(ctx), procurement.SpendQuery{From: &from, To: &to}).
		Where("supplier_id = ?", supplierID).
		Select("COALESCE(SUM(total_amount), 0) AS total, COUNT(*) AS order_count").
		Scan(&row).Error; err != nil {
		return procurement.SupplierSpend{}, err
	}
	return procurement.SupplierSpend{
		SupplierID: supplierID,
		Total:      row.Total,
		OrderCount: row.OrderCount,
	}, nil
}

// SumApprovedBySupplier groups approved spend per supplier, largest first
func (r *GormSpendRepository) SumApprovedBySupplier(ctx context.Context, q procurement.SpendQuery) ([]procurement.SupplierSpend, error) {
	query := applySpendQuery(r.approved(ctx), q).
		Select("supplier_id, COALESCE(SUM(total_amount), 0) AS total, COUNT(*) AS order_count").
		Group("supplier_id").
		Order("total DESC")
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	var rows []spendRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	spends := make([]procurement.SupplierSpend, len(rows))
	for i, row := range rows {
		spends[i] = procurement.SupplierSpend{
			SupplierID: row.SupplierID,
			Total:      row.Total,
			OrderCount: row.OrderCount,
		}
	}
	return spends, nil
}

// ApprovedInWindow lists approved orders with from <= approved_at < to
func (r *GormSpendRepository) ApprovedInWindow(ctx context.Context, from, to time.Time) ([]*procurement.PurchaseOrder, error) {
	var orderModels []models.PurchaseOrderModel
	if err := applySpendQuery(r.approved(ctx), procurement.SpendQuery{From: &from, To: &to}).
		Order("approved_at ASC").
		Find(&orderModels).Error; err != nil {
		return nil, err
	}
	orders := make([]*procurement.PurchaseOrder, len(orderModels))
	for i := range orderModels {
		orders[i] = orderModels[i].ToDomain()
	}
	return orders, nil
}

// CountByStatus counts orders per status. Statuses without orders are zero.
func (r *GormSpendRepository) CountByStatus(ctx context.Context, createdByID *uuid.UUID) (map[procurement.Status]int64, error) {
	query := r.db.WithContext(ctx).Model(&models.PurchaseOrderModel{})
	if createdByID != nil {
		query = query.Where("created_by_id = ?", *createdByID)
	}

	var rows []struct {
		Status procurement.Status
		Count  int64
	}
	if err := query.Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[procurement.Status]int64, len(procurement.AllStatuses()))
	for _, s := range procurement.AllStatuses() {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// TotalApproved sums approved orders matching q
func (r *GormSpendRepository) TotalApproved(ctx context.Context, q procurement.SpendQuery) (decimal.Decimal, error) {
	var row spendRow
	if err := applySpendQuery(r.approved(ctx), q).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

var _ procurement.SpendRepository = (*GormSpendRepository)(nil)
