package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/umitgh/procurement-system/internal/interfaces/http/handler"
	"github.com/umitgh/procurement-system/internal/interfaces/http/middleware"
)

// Handlers are the HTTP handlers the procurement API is built from
type Handlers struct {
	PurchaseOrders *handler.PurchaseOrderHandler
	Approvals      *handler.ApprovalHandler
	Suppliers      *handler.SupplierHandler
	Users          *handler.UserHandler
	Companies      *handler.CompanyHandler
	Dashboard      *handler.DashboardHandler
	Outbox         *handler.OutboxHandler
	EmailLogs      *handler.EmailLogHandler
	System         *handler.SystemHandler
}

// ProcurementGroups declares every authenticated route of the API. The
// groups expect the caller's actor to be set by the API middleware.
func ProcurementGroups(h Handlers) []RouteRegistrar {
	orders := NewDomainGroup("purchase-orders", "/purchase-orders").
		POST("", h.PurchaseOrders.Create).
		GET("", h.PurchaseOrders.List).
		GET("/:id", h.PurchaseOrders.GetByID).
		PUT("/:id", h.PurchaseOrders.Update).
		DELETE("/:id", h.PurchaseOrders.Delete).
		POST("/:id/submit", h.PurchaseOrders.Submit).
		POST("/:id/cancel", h.PurchaseOrders.Cancel).
		GET("/:id/document", h.PurchaseOrders.Document).
		GET("/:id/approvals", h.PurchaseOrders.Approvals)

	approvals := NewDomainGroup("approvals", "/approvals").
		GET("", h.Approvals.ListPending).
		GET("/count", h.Approvals.CountPending).
		PUT("/:id", h.Approvals.Decide)

	suppliers := NewDomainGroup("suppliers", "/suppliers").
		GET("", h.Suppliers.List).
		POST("", h.Suppliers.Create).
		GET("/monitoring", h.Suppliers.Monitoring).
		GET("/:id", h.Suppliers.GetByID).
		PUT("/:id", h.Suppliers.Update).
		GET("/:id/spend", h.Suppliers.Spend)

	users := NewDomainGroup("users", "/users").
		GET("/me", h.Users.Me).
		GET("", h.Users.List).
		POST("", h.Users.Create).
		GET("/:id", h.Users.GetByID).
		PUT("/:id", h.Users.Update).
		DELETE("/:id", h.Users.Deactivate)

	companies := NewDomainGroup("companies", "/companies").
		GET("", h.Companies.List).
		POST("", h.Companies.Create)

	dashboard := NewDomainGroup("dashboard", "/dashboard").
		GET("/stats", h.Dashboard.Stats).
		GET("/top-suppliers", h.Dashboard.TopSuppliers)

	system := NewDomainGroup("system", "/system").
		GET("/info", h.System.GetSystemInfo)
	admin := system.Group("system-admin", "").Use(middleware.RequireAdmin())
	admin.GET("/email-logs", h.EmailLogs.Recent)
	admin.Group("outbox", "/outbox").
		GET("/stats", h.Outbox.GetStats).
		GET("/dead", h.Outbox.GetDeadLetterEntries).
		POST("/dead/retry-all", h.Outbox.RetryAllDeadEntries).
		GET("/:id", h.Outbox.GetEntry).
		POST("/:id/retry", h.Outbox.RetryDeadEntry)

	return []RouteRegistrar{orders, approvals, suppliers, users, companies, dashboard, system}
}

// RegisterHealthChecks mounts the unauthenticated liveness and readiness endpoints
func RegisterHealthChecks(engine *gin.Engine, system *handler.SystemHandler) {
	engine.GET("/health", system.Health)
	engine.GET("/ready", system.Ready)
}

// RegisterSwagger serves the OpenAPI UI behind protection
func RegisterSwagger(engine *gin.Engine, protection gin.HandlerFunc) {
	engine.GET("/swagger/*any", protection, ginSwagger.WrapHandler(swaggerFiles.Handler))
}
