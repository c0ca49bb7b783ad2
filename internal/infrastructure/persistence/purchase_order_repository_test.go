package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
	"github.com/umitgh/procurement-system/internal/domain/shared"
)

func TestGormPurchaseOrderRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)
	ctx := context.Background()

	order := mustOrder(t, "PO-20260115-0001", uuid.New(), uuid.New(), uuid.New(),
		line("Toner", "45.50", "2"),
		line("Paper", "3.25", "10"),
		line("Stapler", "12", "1"),
	)
	require.NoError(t, repo.Create(ctx, order))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "PO-20260115-0001", found.PONumber)
	assert.Equal(t, procurement.StatusDraft, found.Status)
	assert.True(t, decimal.RequireFromString("135.50").Equal(found.TotalAmount))
	assert.Equal(t, 1, found.Version)
	require.Len(t, found.Items, 3)
	for i, item := range found.Items {
		assert.Equal(t, i+1, item.Position)
		assert.Equal(t, order.ID, item.PurchaseOrderID)
	}
	assert.Equal(t, "Toner", found.Items[0].ItemName)
	assert.True(t, decimal.NewFromInt(91).Equal(found.Items[0].LineTotal))

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, procurement.ErrPurchaseOrderNotFound)
}

func TestGormPurchaseOrderRepository_CreateRejectsDuplicateNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)

	seedOrder(t, repo, "PO-20260115-0001", uuid.New(), uuid.New())
	dup := mustOrder(t, "PO-20260115-0001", uuid.New(), uuid.New(), uuid.New())
	assert.Error(t, repo.Create(context.Background(), dup))
}

func TestGormPurchaseOrderRepository_LatestNumberWithPrefix(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)
	ctx := context.Background()

	latest, err := repo.LatestNumberWithPrefix(ctx, "PO-20260115-")
	require.NoError(t, err)
	assert.Equal(t, "", latest)

	for _, n := range []string{"PO-20260115-0002", "PO-20260115-0010", "PO-20260114-0099", "PO-20260115-0003"} {
		seedOrder(t, repo, n, uuid.New(), uuid.New())
	}

	latest, err = repo.LatestNumberWithPrefix(ctx, "PO-20260115-")
	require.NoError(t, err)
	assert.Equal(t, "PO-20260115-0010", latest)
	day := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "PO-20260115-0011", procurement.NextPONumber(day, latest))
}

func TestGormPurchaseOrderRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)
	ctx := context.Background()

	order := seedOrder(t, repo, "PO-20260115-0001", uuid.New(), uuid.New(), line("A", "1", "1"), line("B", "2", "1"))

	t.Run("replaces items and bumps the version", func(t *testing.T) {
		newSupplier := uuid.New()
		require.NoError(t, order.UpdateHeader(newSupplier, order.CompanyID, "urgent"))
		require.NoError(t, order.ReplaceItems([]procurement.LineItemInput{line("C", "100", "3")}))
		require.NoError(t, repo.Update(ctx, order))
		assert.Equal(t, 2, order.Version)

		found, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, newSupplier, found.SupplierID)
		assert.Equal(t, "urgent", found.Remarks)
		assert.Equal(t, 2, found.Version)
		require.Len(t, found.Items, 1)
		assert.Equal(t, "C", found.Items[0].ItemName)
		assert.True(t, decimal.NewFromInt(300).Equal(found.TotalAmount))

		var itemRows int64
		require.NoError(t, db.Table("purchase_order_items").Where("purchase_order_id = ?", order.ID).Count(&itemRows).Error)
		assert.Equal(t, int64(1), itemRows)
	})

	t.Run("stale version is a concurrency conflict", func(t *testing.T) {
		stale, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		stale.Version = 1

		err = repo.Update(ctx, stale)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
	})

	t.Run("unknown order is not found", func(t *testing.T) {
		ghost := mustOrder(t, "PO-20260115-0099", uuid.New(), uuid.New(), uuid.New())
		assert.ErrorIs(t, repo.Update(ctx, ghost), procurement.ErrPurchaseOrderNotFound)
	})
}

func TestGormPurchaseOrderRepository_SaveWithLockAndEvents(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)
	saver := &recordingSaver{}
	repo.SetOutboxEventSaver(saver)
	ctx := context.Background()

	order := seedOrder(t, repo, "PO-20260115-0001", uuid.New(), uuid.New())

	t.Run("persists the transition and hands events to the outbox", func(t *testing.T) {
		require.NoError(t, order.Submit())
		order.AppendRemark("[Spend alert] over threshold")
		require.NoError(t, repo.SaveWithLockAndEvents(ctx, order, order.GetDomainEvents()))

		found, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, procurement.StatusPendingApproval, found.Status)
		require.NotNil(t, found.SubmittedAt)
		assert.Contains(t, found.Remarks, "[Spend alert]")
		assert.Equal(t, []string{procurement.EventTypePurchaseOrderSubmitted}, saver.types())
	})

	t.Run("outbox failure rolls back the transition", func(t *testing.T) {
		saver.err = errors.New("outbox down")
		defer func() { saver.err = nil }()

		before := order.Version
		require.NoError(t, order.Cancel(order.CreatedByID, false))
		err := repo.SaveWithLockAndEvents(ctx, order, order.GetDomainEvents())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "outbox down")

		found, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, procurement.StatusPendingApproval, found.Status)
		assert.Equal(t, before, found.Version)
	})

	t.Run("concurrent writer loses", func(t *testing.T) {
		first, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		second, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)

		require.NoError(t, first.Approve(false))
		require.NoError(t, repo.SaveWithLockAndEvents(ctx, first, first.GetDomainEvents()))

		require.NoError(t, second.Reject(uuid.New(), "no budget"))
		err = repo.SaveWithLockAndEvents(ctx, second, second.GetDomainEvents())
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)

		found, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, procurement.StatusApproved, found.Status)
		assert.Nil(t, found.RejectedAt)
	})
}

func TestGormPurchaseOrderRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)
	ctx := context.Background()

	alice, bob := uuid.New(), uuid.New()
	acme, globex := uuid.New(), uuid.New()
	seedOrder(t, repo, "PO-20260115-0001", alice, acme)
	submitted(t, repo, "PO-20260115-0002", alice, globex)
	submitted(t, repo, "PO-20260115-0003", bob, acme)
	seedOrder(t, repo, "PO-20260116-0001", bob, globex)

	pending := procurement.StatusPendingApproval
	tests := []struct {
		name   string
		filter procurement.PurchaseOrderFilter
		want   []string
	}{
		{"by creator", procurement.PurchaseOrderFilter{CreatedByID: &alice}, []string{"PO-20260115-0001", "PO-20260115-0002"}},
		{"by status", procurement.PurchaseOrderFilter{Status: &pending}, []string{"PO-20260115-0002", "PO-20260115-0003"}},
		{"by supplier", procurement.PurchaseOrderFilter{SupplierID: &globex}, []string{"PO-20260115-0002", "PO-20260116-0001"}},
		{"by search", procurement.PurchaseOrderFilter{Filter: shared.Filter{Search: "20260116"}}, []string{"PO-20260116-0001"}},
		{"combined", procurement.PurchaseOrderFilter{CreatedByID: &bob, Status: &pending}, []string{"PO-20260115-0003"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.filter.OrderBy = "po_number"
			tt.filter.OrderDir = "asc"
			orders, total, err := repo.FindAll(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.want)), total)
			got := make([]string, len(orders))
			for i, o := range orders {
				got[i] = o.PONumber
				assert.NotEmpty(t, o.Items)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("paginates and reports the full total", func(t *testing.T) {
		orders, total, err := repo.FindAll(ctx, procurement.PurchaseOrderFilter{
			Filter: shared.Filter{Page: 2, PageSize: 3, OrderBy: "po_number", OrderDir: "asc"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		require.Len(t, orders, 1)
		assert.Equal(t, "PO-20260116-0001", orders[0].PONumber)
	})
}

func TestGormPurchaseOrderRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)
	ctx := context.Background()

	order := seedOrder(t, repo, "PO-20260115-0001", uuid.New(), uuid.New(), line("A", "1", "1"), line("B", "1", "1"))
	require.NoError(t, repo.Delete(ctx, order.ID))

	_, err := repo.FindByID(ctx, order.ID)
	assert.ErrorIs(t, err, procurement.ErrPurchaseOrderNotFound)

	var itemRows int64
	require.NoError(t, db.Table("purchase_order_items").Count(&itemRows).Error)
	assert.Zero(t, itemRows)

	assert.ErrorIs(t, repo.Delete(ctx, order.ID), procurement.ErrPurchaseOrderNotFound)
}
