package models

import (
	"github.com/umitgh/procurement-system/internal/domain/notification"
)

// EmailLogModel is the audit row of one outgoing e-mail.
type EmailLogModel struct {
	BaseModel
	To           string                   `gorm:"column:to_address;type:varchar(200);not null;index"`
	Subject      string                   `gorm:"type:varchar(300);not null"`
	Body         string                   `gorm:"type:text"`
	Status       notification.EmailStatus `gorm:"type:varchar(20);not null;index"`
	ErrorMessage string                   `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (EmailLogModel) TableName() string {
	return "email_logs"
}

// ToDomain converts the persistence model to a domain EmailLog.
func (m *EmailLogModel) ToDomain() *notification.EmailLog {
	return &notification.EmailLog{
		BaseEntity:   m.BaseModel.ToDomain(),
		To:           m.To,
		Subject:      m.Subject,
		Body:         m.Body,
		Status:       m.Status,
		ErrorMessage: m.ErrorMessage,
	}
}

// EmailLogModelFromDomain creates a persistence model from a domain EmailLog.
func EmailLogModelFromDomain(l *notification.EmailLog) *EmailLogModel {
	m := &EmailLogModel{
		To:           l.To,
		Subject:      l.Subject,
		Body:         l.Body,
		Status:       l.Status,
		ErrorMessage: l.ErrorMessage,
	}
	m.FromDomainBaseEntity(l.BaseEntity)
	return m
}
