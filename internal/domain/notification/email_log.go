package notification

import (
	"context"

	"github.com/umitgh/procurement-system/internal/domain/shared"
)

// EmailStatus records the outcome of one send attempt
type EmailStatus string

const (
	EmailStatusSuccess EmailStatus = "SUCCESS"
	EmailStatusFailed  EmailStatus = "FAILED"
)

// EmailLog is an audit row written for every outgoing e-mail
type EmailLog struct {
	shared.BaseEntity
	To           string
	Subject      string
	Body         string
	Status       EmailStatus
	ErrorMessage string
}

// NewEmailLog records a send attempt. A nil sendErr means success.
func NewEmailLog(to, subject, body string, sendErr error) *EmailLog {
	log := &EmailLog{
		BaseEntity: shared.NewBaseEntity(),
		To:         to,
		Subject:    subject,
		Body:       body,
		Status:     EmailStatusSuccess,
	}
	if sendErr != nil {
		log.Status = EmailStatusFailed
		log.ErrorMessage = sendErr.Error()
	}
	return log
}

// EmailLogRepository persists email audit rows
type EmailLogRepository interface {
	Save(ctx context.Context, log *EmailLog) error
	FindRecent(ctx context.Context, limit int) ([]*EmailLog, error)
}
