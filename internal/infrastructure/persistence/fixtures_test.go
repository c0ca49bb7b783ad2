package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/umitgh/procurement-system/internal/domain/identity"
	"github.com/umitgh/procurement-system/internal/domain/partner"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
	"github.com/umitgh/procurement-system/internal/domain/shared"
	"github.com/umitgh/procurement-system/internal/infrastructure/persistence/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory sqlite database with every table migrated
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

// newMockDB returns a postgres-dialect gorm.DB backed by sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gormDB, mock, mockDB
}

// fixedClock pins shared.Now for the duration of the test
func fixedClock(t *testing.T, at time.Time) {
	t.Helper()
	restore := shared.SetClock(shared.FixedClock(at))
	t.Cleanup(restore)
}

// recordingSaver captures the events handed to the outbox
type recordingSaver struct {
	events []shared.DomainEvent
	err    error
}

func (s *recordingSaver) SaveEvents(_ context.Context, tx interface{}, events ...shared.DomainEvent) error {
	if _, ok := tx.(*gorm.DB); !ok {
		panic("outbox saver called without a transaction")
	}
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, events...)
	return nil
}

func (s *recordingSaver) types() []string {
	out := make([]string, len(s.events))
	for i, e := range s.events {
		out[i] = e.EventType()
	}
	return out
}

func mustUser(t *testing.T, email, name string, limit int64, manager *identity.User) *identity.User {
	t.Helper()
	u, err := identity.NewUser(email, name, "secret", identity.RoleUser)
	require.NoError(t, err)
	require.NoError(t, u.SetApprovalLimit(decimal.NewFromInt(limit)))
	if manager != nil {
		require.NoError(t, u.SetManager(&manager.ID))
	}
	return u
}

func mustSupplier(t *testing.T, name, email string) *partner.Supplier {
	t.Helper()
	s, err := partner.NewSupplier(name, email)
	require.NoError(t, err)
	return s
}

func mustCompany(t *testing.T, name string) *partner.Company {
	t.Helper()
	c, err := partner.NewCompany(name)
	require.NoError(t, err)
	return c
}

// line builds a line item input of price x qty
func line(name string, price, qty string) procurement.LineItemInput {
	return procurement.LineItemInput{
		ItemName:  name,
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  decimal.RequireFromString(qty),
	}
}

func mustOrder(t *testing.T, number string, creator, supplier, company uuid.UUID, items ...procurement.LineItemInput) *procurement.PurchaseOrder {
	t.Helper()
	if len(items) == 0 {
		items = []procurement.LineItemInput{line("Paper", "10.00", "5")}
	}
	o, err := procurement.NewPurchaseOrder(number, creator, supplier, company, "", items)
	require.NoError(t, err)
	return o
}

// seedOrder stores an order through the repository
func seedOrder(t *testing.T, repo *GormPurchaseOrderRepository, number string, creator, supplier uuid.UUID, items ...procurement.LineItemInput) *procurement.PurchaseOrder {
	t.Helper()
	o := mustOrder(t, number, creator, supplier, uuid.New(), items...)
	require.NoError(t, repo.Create(context.Background(), o))
	return o
}

// submitted stores an order and moves it to PENDING_APPROVAL
func submitted(t *testing.T, repo *GormPurchaseOrderRepository, number string, creator, supplier uuid.UUID, items ...procurement.LineItemInput) *procurement.PurchaseOrder {
	t.Helper()
	o := seedOrder(t, repo, number, creator, supplier, items...)
	require.NoError(t, o.Submit())
	require.NoError(t, repo.SaveWithLockAndEvents(context.Background(), o, o.GetDomainEvents()))
	o.ClearDomainEvents()
	return o
}

// approved stores an order and moves it to APPROVED at the current clock
func approved(t *testing.T, repo *GormPurchaseOrderRepository, number string, creator, supplier uuid.UUID, items ...procurement.LineItemInput) *procurement.PurchaseOrder {
	t.Helper()
	o := submitted(t, repo, number, creator, supplier, items...)
	require.NoError(t, o.Approve(true))
	require.NoError(t, repo.SaveWithLockAndEvents(context.Background(), o, nil))
	o.ClearDomainEvents()
	return o
}
