package handler

import (
	"github.com/gin-gonic/gin"
	procurementapp "github.com/umitgh/procurement-system/internal/application/procurement"
)

// DashboardHandler serves the dashboard figures
type DashboardHandler struct {
	BaseHandler
	dashboard *procurementapp.DashboardService
	spend     *procurementapp.SpendMonitor
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboard *procurementapp.DashboardService, spend *procurementapp.SpendMonitor) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, spend: spend}
}

// Stats godoc
// @ID           getDashboardStats
// @Summary      Dashboard statistics
// @Description  Order counts by status, approvals waiting for the caller, total and current month approved spend. USER callers see their own orders only.
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} APIResponse[procurement.DashboardStatsResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	stats, err := h.dashboard.Stats(c.Request.Context(), actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// TopSuppliers godoc
// @ID           getDashboardTopSuppliers
// @Summary      Top suppliers by approved spend
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} APIResponse[[]procurement.TopSupplierResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /dashboard/top-suppliers [get]
func (h *DashboardHandler) TopSuppliers(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	top, err := h.spend.TopSuppliers(c.Request.Context(), actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, top)
}
