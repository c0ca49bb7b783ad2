package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
	"github.com/umitgh/procurement-system/internal/domain/shared"
	"github.com/umitgh/procurement-system/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

func TestOutboxPublisher_SaveEventsCommitsWithTransaction(t *testing.T) {
	db := setupOutboxDB(t)
	serializer := NewEventSerializer()
	RegisterAllEvents(serializer)
	publisher := NewOutboxPublisher(serializer)
	ctx := context.Background()

	err := db.Transaction(func(tx *gorm.DB) error {
		return publisher.SaveEvents(ctx, tx, cancelledEvent(), requestedEvent(1))
	})
	require.NoError(t, err)

	var rows []models.OutboxEntryModel
	require.NoError(t, db.Order("event_type").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, procurement.EventTypeApprovalRequested, rows[0].EventType)
	assert.Equal(t, procurement.AggregateTypePurchaseOrder, rows[0].AggregateType)
	assert.Equal(t, shared.OutboxStatusPending, rows[0].Status)
}

func TestOutboxPublisher_RollbackDiscardsEvents(t *testing.T) {
	db := setupOutboxDB(t)
	publisher := NewOutboxPublisher(NewEventSerializer())
	ctx := context.Background()

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := publisher.PublishWithTx(ctx, tx, cancelledEvent()); err != nil {
			return err
		}
		return errors.New("order update failed")
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.OutboxEntryModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOutboxPublisher_RejectsForeignTransaction(t *testing.T) {
	publisher := NewOutboxPublisher(NewEventSerializer())

	err := publisher.SaveEvents(context.Background(), "not-a-tx", cancelledEvent())
	assert.ErrorContains(t, err, "*gorm.DB")

	assert.NoError(t, publisher.SaveEvents(context.Background(), "ignored when empty"))
}
