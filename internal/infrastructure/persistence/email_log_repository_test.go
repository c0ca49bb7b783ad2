package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umitgh/procurement-system/internal/domain/notification"
)

func TestGormEmailLogRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormEmailLogRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	for i, subject := range []string{"first", "second", "third"} {
		fixedClock(t, base.Add(time.Duration(i)*time.Minute))
		var sendErr error
		if subject == "second" {
			sendErr = errors.New("SMTP not configured")
		}
		require.NoError(t, repo.Save(ctx, notification.NewEmailLog("buyer@example.com", subject, "body", sendErr)))
	}

	logs, err := repo.FindRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "third", logs[0].Subject)
	assert.Equal(t, "second", logs[1].Subject)
	assert.Equal(t, notification.EmailStatusFailed, logs[1].Status)
	assert.Equal(t, "SMTP not configured", logs[1].ErrorMessage)
	assert.Equal(t, "buyer@example.com", logs[1].To)

	logs, err = repo.FindRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, logs, 3)
	assert.Equal(t, notification.EmailStatusSuccess, logs[2].Status)
}
