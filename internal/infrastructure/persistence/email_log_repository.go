package persistence

import (
	"context"

	"github.com/umitgh/procurement-system/internal/domain/notification"
	"github.com/umitgh/procurement-system/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormEmailLogRepository implements notification.EmailLogRepository using GORM
type GormEmailLogRepository struct {
	db *gorm.DB
}

// NewGormEmailLogRepository creates a new GormEmailLogRepository
func NewGormEmailLogRepository(db *gorm.DB) *GormEmailLogRepository {
	return &GormEmailLogRepository{db: db}
}

// Save appends an audit row
func (r *GormEmailLogRepository) Save(ctx context.Context, log *notification.EmailLog) error {
	return r.db.WithContext(ctx).Create(models.EmailLogModelFromDomain(log)).Error
}

// FindRecent returns the newest rows first
func (r *GormEmailLogRepository) FindRecent(ctx context.Context, limit int) ([]*notification.EmailLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var logModels []models.EmailLogModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&logModels).Error; err != nil {
		return nil, err
	}
	logs := make([]*notification.EmailLog, len(logModels))
	for i := range logModels {
		logs[i] = logModels[i].ToDomain()
	}
	return logs, nil
}

var _ notification.EmailLogRepository = (*GormEmailLogRepository)(nil)
