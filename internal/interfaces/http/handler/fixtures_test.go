package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	eventapp "github.com/umitgh/procurement-system/internal/application/event"
	procurementapp "github.com/umitgh/procurement-system/internal/application/procurement"
	"github.com/umitgh/procurement-system/internal/domain/identity"
	"github.com/umitgh/procurement-system/internal/domain/partner"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
	infraevent "github.com/umitgh/procurement-system/internal/infrastructure/event"
	"github.com/umitgh/procurement-system/internal/infrastructure/persistence"
	"github.com/umitgh/procurement-system/internal/infrastructure/persistence/models"
	"github.com/umitgh/procurement-system/internal/interfaces/http/dto"
	"github.com/umitgh/procurement-system/internal/interfaces/http/middleware"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testActorHeader = "X-Test-Actor"
	testRoleHeader  = "X-Test-Role"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// testEnv is the procurement API served from an in-memory sqlite database
type testEnv struct {
	engine    *gin.Engine
	db        *gorm.DB
	admin     *identity.User
	director  *identity.User
	manager   *identity.User
	requester *identity.User
	stranger  *identity.User
	supplier  *partner.Supplier
	company   *partner.Company
}

func newTestEnv(t *testing.T) *testEnv {
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

	userRepo := persistence.NewGormUserRepository(db)
	supplierRepo := persistence.NewGormSupplierRepository(db)
	companyRepo := persistence.NewGormCompanyRepository(db)
	orderRepo := persistence.NewGormPurchaseOrderRepository(db)
	approvalRepo := persistence.NewGormApprovalRepository(db)
	spendRepo := persistence.NewGormSpendRepository(db)
	emailLogRepo := persistence.NewGormEmailLogRepository(db)
	outboxRepo := infraevent.NewGormOutboxRepository(db)

	env := &testEnv{db: db}
	ctx := context.Background()
	env.director = seedUser(t, userRepo, "director@acme.test", "Dana Director", identity.RoleManager, 100000, nil)
	env.manager = seedUser(t, userRepo, "manager@acme.test", "Max Manager", identity.RoleManager, 5000, env.director)
	env.requester = seedUser(t, userRepo, "requester@acme.test", "Rita Requester", identity.RoleUser, 100, env.manager)
	env.stranger = seedUser(t, userRepo, "stranger@acme.test", "Sam Stranger", identity.RoleUser, 0, nil)
	env.admin = seedUser(t, userRepo, "admin@acme.test", "Ada Admin", identity.RoleAdmin, 0, nil)

	env.supplier, err = partner.NewSupplier("Office Supplies Ltd", "orders@office.test")
	require.NoError(t, err)
	require.NoError(t, supplierRepo.Save(ctx, env.supplier))
	env.company, err = partner.NewCompany("Acme Holdings")
	require.NoError(t, err)
	require.NoError(t, companyRepo.Save(ctx, env.company))

	spend := procurementapp.NewSpendMonitor(spendRepo, supplierRepo, decimal.Zero, time.UTC, nil)
	approvals := procurementapp.NewApprovalService(orderRepo, approvalRepo,
		procurement.NewChainResolver(userRepo, 0), userRepo, nil)
	orders := procurementapp.NewPurchaseOrderService(orderRepo, approvalRepo, supplierRepo, companyRepo, approvals, spend, nil)
	directory := procurementapp.NewDirectoryService(userRepo, supplierRepo, companyRepo, nil)

	orderHandler := NewPurchaseOrderHandler(orders, approvals)
	approvalHandler := NewApprovalHandler(approvals)
	supplierHandler := NewSupplierHandler(directory, spend)
	userHandler := NewUserHandler(directory)
	companyHandler := NewCompanyHandler(directory)
	dashboardHandler := NewDashboardHandler(procurementapp.NewDashboardService(spendRepo, approvalRepo, spend), spend)
	outboxHandler := NewOutboxHandler(eventapp.NewOutboxService(outboxRepo, zap.NewNop()))
	emailLogHandler := NewEmailLogHandler(procurementapp.NewEmailLogService(emailLogRepo))

	r := gin.New()
	r.Use(middleware.RequestID(), testActor())

	r.POST("/purchase-orders", orderHandler.Create)
	r.GET("/purchase-orders", orderHandler.List)
	r.GET("/purchase-orders/:id", orderHandler.GetByID)
	r.PUT("/purchase-orders/:id", orderHandler.Update)
	r.DELETE("/purchase-orders/:id", orderHandler.Delete)
	r.POST("/purchase-orders/:id/submit", orderHandler.Submit)
	r.POST("/purchase-orders/:id/cancel", orderHandler.Cancel)
	r.GET("/purchase-orders/:id/document", orderHandler.Document)
	r.GET("/purchase-orders/:id/approvals", orderHandler.Approvals)

	r.GET("/approvals", approvalHandler.ListPending)
	r.GET("/approvals/count", approvalHandler.CountPending)
	r.PUT("/approvals/:id", approvalHandler.Decide)

	r.GET("/suppliers", supplierHandler.List)
	r.POST("/suppliers", supplierHandler.Create)
	r.GET("/suppliers/monitoring", supplierHandler.Monitoring)
	r.GET("/suppliers/:id", supplierHandler.GetByID)
	r.PUT("/suppliers/:id", supplierHandler.Update)
	r.GET("/suppliers/:id/spend", supplierHandler.Spend)

	r.GET("/users/me", userHandler.Me)
	r.GET("/users", userHandler.List)
	r.POST("/users", userHandler.Create)
	r.GET("/users/:id", userHandler.GetByID)
	r.PUT("/users/:id", userHandler.Update)
	r.DELETE("/users/:id", userHandler.Deactivate)

	r.GET("/companies", companyHandler.List)
	r.POST("/companies", companyHandler.Create)

	r.GET("/dashboard/stats", dashboardHandler.Stats)
	r.GET("/dashboard/top-suppliers", dashboardHandler.TopSuppliers)

	r.GET("/system/outbox/dead", outboxHandler.GetDeadLetterEntries)
	r.GET("/system/outbox/stats", outboxHandler.GetStats)
	r.GET("/system/outbox/:id", outboxHandler.GetEntry)
	r.POST("/system/outbox/:id/retry", outboxHandler.RetryDeadEntry)
	r.POST("/system/outbox/dead/retry-all", outboxHandler.RetryAllDeadEntries)
	r.GET("/system/email-logs", emailLogHandler.Recent)

	env.engine = r
	return env
}

// testActor stands in for JWTAuth: it trusts the actor headers
func testActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader(testActorHeader); raw != "" {
			c.Set(middleware.ActorKey, procurementapp.Actor{
				ID:   uuid.MustParse(raw),
				Role: identity.Role(c.GetHeader(testRoleHeader)),
			})
		}
		c.Next()
	}
}

func seedUser(t *testing.T, repo *persistence.GormUserRepository, email, name string, role identity.Role, limit int64, manager *identity.User) *identity.User {
	t.Helper()
	u, err := identity.NewUser(email, name, "correct-horse", role)
	require.NoError(t, err)
	require.NoError(t, u.SetApprovalLimit(decimal.NewFromInt(limit)))
	if manager != nil {
		require.NoError(t, u.SetManager(&manager.ID))
	}
	require.NoError(t, repo.Save(context.Background(), u))
	return u
}

// do sends a request as user; a nil user sends it unauthenticated
func (e *testEnv) do(t *testing.T, user *identity.User, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		req.Header.Set(testActorHeader, user.ID.String())
		req.Header.Set(testRoleHeader, string(user.Role))
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

// createOrder creates a draft for requester worth price x qty
func (e *testEnv) createOrder(t *testing.T, price, qty string) procurementapp.PurchaseOrderResponse {
	t.Helper()
	w := e.do(t, e.requester, http.MethodPost, "/purchase-orders", e.orderBody(price, qty))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeData[procurementapp.PurchaseOrderResponse](t, w)
}

func (e *testEnv) orderBody(price, qty string) map[string]any {
	return map[string]any{
		"supplier_id": e.supplier.ID,
		"company_id":  e.company.ID,
		"remarks":     "Quarterly restock",
		"line_items": []map[string]any{
			{"item_name": "A4 paper", "unit_price": price, "quantity": qty},
		},
	}
}

type envelope[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data"`
	Error   *dto.ErrorInfo `json:"error"`
	Meta    *dto.Meta      `json:"meta"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var resp envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	resp := decode[T](t, w)
	require.True(t, resp.Success, w.Body.String())
	return resp.Data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorInfo {
	t.Helper()
	resp := decode[json.RawMessage](t, w)
	require.False(t, resp.Success)
	require.NotNil(t, resp.Error, w.Body.String())
	return resp.Error
}
