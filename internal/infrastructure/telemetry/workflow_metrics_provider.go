package telemetry

import (
	"context"

	"gorm.io/gorm"
)

// GormWorkflowMetricsProvider implements WorkflowMetricsProvider using GORM.
// It queries the purchase_orders table directly for aggregated counts.
type GormWorkflowMetricsProvider struct {
	db *gorm.DB
}

// NewGormWorkflowMetricsProvider creates a new GormWorkflowMetricsProvider.
func NewGormWorkflowMetricsProvider(db *gorm.DB) *GormWorkflowMetricsProvider {
	return &GormWorkflowMetricsProvider{db: db}
}

// CountOrdersByStatus returns the number of purchase orders per status.
func (p *GormWorkflowMetricsProvider) CountOrdersByStatus(ctx context.Context) (map[string]int64, error) {
	type result struct {
		Status string `gorm:"column:status"`
		Count  int64  `gorm:"column:count"`
	}

	var results []result
	err := p.db.WithContext(ctx).
		Table("purchase_orders").
		Select("status, COUNT(*) as count").
		Group("status").
		Find(&results).Error
	if err != nil {
		return nil, err
	}

	m := make(map[string]int64, len(results))
	for _, r := range results {
		m[r.Status] = r.Count
	}
	return m, nil
}
