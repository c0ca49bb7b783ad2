package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
	"github.com/umitgh/procurement-system/internal/domain/shared"
	"github.com/umitgh/procurement-system/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormApprovalRepository implements procurement.ApprovalRepository using GORM
type GormApprovalRepository struct {
	db          *gorm.DB
	outboxSaver shared.OutboxEventSaver
}

// NewGormApprovalRepository creates a new GormApprovalRepository
func NewGormApprovalRepository(db *gorm.DB) *GormApprovalRepository {
	return &GormApprovalRepository{db: db}
}

// SetOutboxEventSaver sets the outbox event saver for transactional event publishing
func (r *GormApprovalRepository) SetOutboxEventSaver(saver shared.OutboxEventSaver) {
	r.outboxSaver = saver
}

// FindByID finds an approval by ID
func (r *GormApprovalRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.Approval, error) {
	var model models.ApprovalModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, procurement.ErrApprovalNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPurchaseOrder lists the approvals of an order by level
func (r *GormApprovalRepository) FindByPurchaseOrder(ctx context.Context, orderID uuid.UUID) ([]*procurement.Approval, error) {
	return findApprovals(r.db.WithContext(ctx), orderID)
}

// actionable restricts approvals (aliased a) to pending rows of approverID
// on orders awaiting approval with no unapproved lower level
func actionable(db *gorm.DB, approverID uuid.UUID) *gorm.DB {
	return db.Table("approvals AS a").
		Joins("JOIN purchase_orders po ON po.id = a.purchase_order_id").
		Where("a.approver_id = ? AND a.status = ? AND po.status = ?",
			approverID, procurement.ApprovalPending, procurement.StatusPendingApproval).
		Where(`NOT EXISTS (SELECT 1 FROM approvals prior
			WHERE prior.purchase_order_id = a.purchase_order_id
			AND prior.level < a.level AND prior.status <> ?)`, procurement.ApprovalApproved)
}

// FindActionableForApprover lists approvals the approver can decide now
func (r *GormApprovalRepository) FindActionableForApprover(ctx context.Context, approverID uuid.UUID) ([]*procurement.Approval, error) {
	var approvalModels []models.ApprovalModel
	if err := actionable(r.db.WithContext(ctx), approverID).
		Select("a.*").
		Order("a.created_at ASC").
		Find(&approvalModels).Error; err != nil {
		return nil, err
	}
	return toApprovals(approvalModels), nil
}

// CountActionableForApprover counts approvals the approver can decide now
func (r *GormApprovalRepository) CountActionableForApprover(ctx context.Context, approverID uuid.UUID) (int64, error) {
	var count int64
	if err := actionable(r.db.WithContext(ctx), approverID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CreateBatch inserts every approval of an order and its events in one
// transaction that holds the order row
func (r *GormApprovalRepository) CreateBatch(ctx context.Context, orderID uuid.UUID, approvals []*procurement.Approval, events []shared.DomainEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockOrder(tx, orderID); err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&models.ApprovalModel{}).
			Where("purchase_order_id = ?", orderID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return procurement.ErrApprovalsAlreadyInitialized
		}

		if len(approvals) > 0 {
			approvalModels := make([]*models.ApprovalModel, len(approvals))
			for i, a := range approvals {
				approvalModels[i] = models.ApprovalModelFromDomain(a)
			}
			if err := tx.Create(&approvalModels).Error; err != nil {
				return err
			}
		}
		return saveOutboxEvents(ctx, r.outboxSaver, tx, events)
	})
}

// Decide loads the approval's order under a row lock along with every
// sibling approval, runs fn and writes the resulting record
func (r *GormApprovalRepository) Decide(ctx context.Context, approvalID uuid.UUID, fn procurement.DecideFunc) (*procurement.DecisionRecord, error) {
	var rec *procurement.DecisionRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target models.ApprovalModel
		if err := tx.First(&target, "id = ?", approvalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return procurement.ErrApprovalNotFound
			}
			return err
		}

		order, err := lockOrder(tx, target.PurchaseOrderID)
		if err != nil {
			return err
		}
		approvals, err := findApprovals(tx, target.PurchaseOrderID)
		if err != nil {
			return err
		}

		rec, err = fn(order, approvals)
		if err != nil {
			return err
		}

		decided := rec.Approval
		result := tx.Model(&models.ApprovalModel{}).
			Where("id = ? AND status = ?", decided.ID, procurement.ApprovalPending).
			Updates(map[string]interface{}{
				"status":       decided.Status,
				"comments":     decided.Comments,
				"responded_at": decided.RespondedAt,
				"updated_at":   decided.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return procurement.ErrApprovalAlreadyProcessed
		}

		if rec.Order != nil {
			if err := saveOrderState(tx, rec.Order); err != nil {
				return err
			}
		}
		return saveOutboxEvents(ctx, r.outboxSaver, tx, rec.Events)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// lockOrder reads an order and its items holding the order row FOR UPDATE
func lockOrder(tx *gorm.DB, orderID uuid.UUID) (*procurement.PurchaseOrder, error) {
	var model models.PurchaseOrderModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, procurement.ErrPurchaseOrderNotFound
		}
		return nil, err
	}
	if err := itemsByPosition(tx.Where("purchase_order_id = ?", orderID)).
		Find(&model.Items).Error; err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func findApprovals(db *gorm.DB, orderID uuid.UUID) ([]*procurement.Approval, error) {
	var approvalModels []models.ApprovalModel
	if err := db.Where("purchase_order_id = ?", orderID).
		Order("level ASC, approver_id ASC").
		Find(&approvalModels).Error; err != nil {
		return nil, err
	}
	return toApprovals(approvalModels), nil
}

func toApprovals(approvalModels []models.ApprovalModel) []*procurement.Approval {
	approvals := make([]*procurement.Approval, len(approvalModels))
	for i := range approvalModels {
		approvals[i] = approvalModels[i].ToDomain()
	}
	return approvals
}

var _ procurement.ApprovalRepository = (*GormApprovalRepository)(nil)
