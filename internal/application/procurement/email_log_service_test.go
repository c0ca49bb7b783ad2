package procurement

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umitgh/procurement-system/internal/domain/identity"
	"github.com/umitgh/procurement-system/internal/domain/notification"
	"github.com/umitgh/procurement-system/internal/domain/shared"
)

func TestEmailLogService_Recent(t *testing.T) {
	ctx := context.Background()

	t.Run("maps rows for admins", func(t *testing.T) {
		repo := new(MockEmailLogRepository)
		svc := NewEmailLogService(repo)
		failed := notification.NewEmailLog("approver@example.com", "Approval needed", "body", errors.New("SMTP not configured"))
		repo.On("FindRecent", ctx, defaultEmailLogLimit).Return([]*notification.EmailLog{failed}, nil)

		logs, err := svc.Recent(ctx, adminActor, 0)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, failed.ID, logs[0].ID)
		assert.Equal(t, "FAILED", logs[0].Status)
		assert.Equal(t, "SMTP not configured", logs[0].ErrorMessage)
		repo.AssertExpectations(t)
	})

	t.Run("caps the limit", func(t *testing.T) {
		repo := new(MockEmailLogRepository)
		svc := NewEmailLogService(repo)
		repo.On("FindRecent", ctx, maxEmailLogLimit).Return([]*notification.EmailLog{}, nil)

		logs, err := svc.Recent(ctx, adminActor, 10_000)
		require.NoError(t, err)
		assert.Empty(t, logs)
		repo.AssertExpectations(t)
	})

	t.Run("non admins are refused", func(t *testing.T) {
		repo := new(MockEmailLogRepository)
		svc := NewEmailLogService(repo)

		_, err := svc.Recent(ctx, Actor{ID: uuid.New(), Role: identity.RoleManager}, 10)
		assert.ErrorIs(t, err, shared.ErrForbidden)
		repo.AssertNotCalled(t, "FindRecent")
	})
}
