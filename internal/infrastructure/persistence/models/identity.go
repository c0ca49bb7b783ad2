package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/umitgh/procurement-system/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	AggregateModel
	Email         string          `gorm:"type:varchar(200);not null;uniqueIndex"`
	Name          string          `gorm:"type:varchar(200);not null"`
	PasswordHash  string          `gorm:"type:varchar(255);not null"`
	Role          identity.Role   `gorm:"type:varchar(20);not null;index"`
	ApprovalLimit decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	ManagerID     *uuid.UUID      `gorm:"type:uuid;index"`
	Active        bool            `gorm:"not null"`
	LastLoginAt   *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Email:             m.Email,
		Name:              m.Name,
		PasswordHash:      m.PasswordHash,
		Role:              m.Role,
		ApprovalLimit:     m.ApprovalLimit,
		ManagerID:         m.ManagerID,
		Active:            m.Active,
		LastLoginAt:       m.LastLoginAt,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Email = u.Email
	m.Name = u.Name
	m.PasswordHash = u.PasswordHash
	m.Role = u.Role
	m.ApprovalLimit = u.ApprovalLimit
	m.ManagerID = u.ManagerID
	m.Active = u.Active
	m.LastLoginAt = u.LastLoginAt
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
