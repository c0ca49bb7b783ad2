package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
	"github.com/umitgh/procurement-system/internal/domain/shared"
	"github.com/umitgh/procurement-system/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPurchaseOrderRepository implements procurement.PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db          *gorm.DB
	outboxSaver shared.OutboxEventSaver // optional, for transactional outbox pattern
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// SetOutboxEventSaver sets the outbox event saver for transactional event publishing
func (r *GormPurchaseOrderRepository) SetOutboxEventSaver(saver shared.OutboxEventSaver) {
	r.outboxSaver = saver
}

func itemsByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// FindByID finds a purchase order with its items
func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.PurchaseOrder, error) {
	var model models.PurchaseOrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items", itemsByPosition).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, procurement.ErrPurchaseOrderNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns one page of orders matching filter and the total count
func (r *GormPurchaseOrderRepository) FindAll(ctx context.Context, filter procurement.PurchaseOrderFilter) ([]*procurement.PurchaseOrder, int64, error) {
	page := filter.Filter.Normalize()
	query := r.db.WithContext(ctx).Model(&models.PurchaseOrderModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.CreatedByID != nil {
		query = query.Where("created_by_id = ?", *filter.CreatedByID)
	}
	if page.Search != "" {
		pattern := "%" + strings.ToLower(page.Search) + "%"
		query = query.Where("LOWER(po_number) LIKE ? OR LOWER(remarks) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orderModels []models.PurchaseOrderModel
	if err := query.
		Preload("Items", itemsByPosition).
		Order(orderClause(page, PurchaseOrderSortFields, "created_at")).
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&orderModels).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*procurement.PurchaseOrder, len(orderModels))
	for i := range orderModels {
		orders[i] = orderModels[i].ToDomain()
	}
	return orders, total, nil
}

// LatestNumberWithPrefix returns the highest PO number starting with prefix
func (r *GormPurchaseOrderRepository) LatestNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	var numbers []string
	if err := r.db.WithContext(ctx).
		Model(&models.PurchaseOrderModel{}).
		Where("po_number LIKE ?", prefix+"%").
		Order("po_number DESC").
		Limit(1).
		Pluck("po_number", &numbers).Error; err != nil {
		return "", err
	}
	if len(numbers) == 0 {
		return "", nil
	}
	return numbers[0], nil
}

// Create inserts a new order and its items
func (r *GormPurchaseOrderRepository) Create(ctx context.Context, order *procurement.PurchaseOrder) error {
	model := models.PurchaseOrderModelFromDomain(order)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
			return err
		}
		if len(model.Items) > 0 {
			if err := tx.Create(&model.Items).Error; err != nil {
				return err
			}
		}
		return saveOutboxEvents(ctx, r.outboxSaver, tx, order.GetDomainEvents())
	})
}

// Update rewrites the header and replaces the items of an order
func (r *GormPurchaseOrderRepository) Update(ctx context.Context, order *procurement.PurchaseOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveOrderState(tx, order); err != nil {
			return err
		}
		if err := tx.Where("purchase_order_id = ?", order.ID).
			Delete(&models.PurchaseOrderItemModel{}).Error; err != nil {
			return err
		}
		for i := range order.Items {
			order.Items[i].PurchaseOrderID = order.ID
			if err := tx.Create(models.PurchaseOrderItemModelFromDomain(&order.Items[i])).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveWithLockAndEvents saves a status change with an optimistic version
// check and writes events to the outbox in the same transaction
func (r *GormPurchaseOrderRepository) SaveWithLockAndEvents(ctx context.Context, order *procurement.PurchaseOrder, events []shared.DomainEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveOrderState(tx, order); err != nil {
			return err
		}
		return saveOutboxEvents(ctx, r.outboxSaver, tx, events)
	})
}

// Delete removes an order and its items
func (r *GormPurchaseOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purchase_order_id = ?", id).
			Delete(&models.PurchaseOrderItemModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.PurchaseOrderModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return procurement.ErrPurchaseOrderNotFound
		}
		return nil
	})
}

func saveOutboxEvents(ctx context.Context, saver shared.OutboxEventSaver, tx *gorm.DB, events []shared.DomainEvent) error {
	if saver == nil || len(events) == 0 {
		return nil
	}
	if err := saver.SaveEvents(ctx, tx, events...); err != nil {
		return fmt.Errorf("failed to save events to outbox: %w", err)
	}
	return nil
}

// saveOrderState writes the mutable header columns of order when the stored
// version still equals order.Version, then advances the version.
func saveOrderState(tx *gorm.DB, order *procurement.PurchaseOrder) error {
	var currentVersion int
	result := tx.Model(&models.PurchaseOrderModel{}).
		Where("id = ?", order.ID).
		Select("version").
		Scan(&currentVersion)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return procurement.ErrPurchaseOrderNotFound
	}
	if currentVersion != order.Version {
		return shared.ErrConcurrencyConflict
	}

	nextVersion := order.Version + 1
	updatedAt := shared.Now()
	result = tx.Model(&models.PurchaseOrderModel{}).
		Where("id = ? AND version = ?", order.ID, currentVersion).
		Updates(map[string]interface{}{
			"status":       order.Status,
			"total_amount": order.TotalAmount,
			"supplier_id":  order.SupplierID,
			"company_id":   order.CompanyID,
			"remarks":      order.Remarks,
			"submitted_at": order.SubmittedAt,
			"approved_at":  order.ApprovedAt,
			"rejected_at":  order.RejectedAt,
			"cancelled_at": order.CancelledAt,
			"version":      nextVersion,
			"updated_at":   updatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}

	order.Version = nextVersion
	order.UpdatedAt = updatedAt
	return nil
}

var _ procurement.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)
