package procurement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/umitgh/procurement-system/internal/domain/notification"
)

const (
	defaultEmailLogLimit = 50
	maxEmailLogLimit     = 500
)

// EmailLogResponse is one recorded send attempt
type EmailLogResponse struct {
	ID           uuid.UUID `json:"id"`
	To           string    `json:"to"`
	Subject      string    `json:"subject"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// EmailLogService exposes the e-mail audit trail to administrators
type EmailLogService struct {
	repo notification.EmailLogRepository
}

// NewEmailLogService creates a new EmailLogService
func NewEmailLogService(repo notification.EmailLogRepository) *EmailLogService {
	return &EmailLogService{repo: repo}
}

// Recent returns the newest send attempts first. limit defaults to 50 and
// is capped at 500.
func (s *EmailLogService) Recent(ctx context.Context, actor Actor, limit int) ([]EmailLogResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = defaultEmailLogLimit
	case limit > maxEmailLogLimit:
		limit = maxEmailLogLimit
	}

	logs, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]EmailLogResponse, len(logs))
	for i, l := range logs {
		out[i] = EmailLogResponse{
			ID:           l.ID,
			To:           l.To,
			Subject:      l.Subject,
			Status:       string(l.Status),
			ErrorMessage: l.ErrorMessage,
			CreatedAt:    l.CreatedAt,
		}
	}
	return out, nil
}
