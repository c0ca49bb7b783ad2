package handler

import (
	"github.com/gin-gonic/gin"
	procurementapp "github.com/umitgh/procurement-system/internal/application/procurement"
)

// SupplierHandler handles the supplier directory and supplier spend
type SupplierHandler struct {
	BaseHandler
	directory *procurementapp.DirectoryService
	spend     *procurementapp.SpendMonitor
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(directory *procurementapp.DirectoryService, spend *procurementapp.SpendMonitor) *SupplierHandler {
	return &SupplierHandler{directory: directory, spend: spend}
}

// List godoc
// @ID           listSuppliers
// @Summary      List suppliers
// @Tags         suppliers
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Items per page" default(20) maximum(100)
// @Param        search query string false "Name or e-mail"
// @Success      200 {object} APIResponse[[]procurement.SupplierResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /suppliers [get]
func (h *SupplierHandler) List(c *gin.Context) {
	var filter procurementapp.DirectoryListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	page, err := h.directory.ListSuppliers(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// GetByID godoc
// @ID           getSupplier
// @Summary      Get a supplier
// @Tags         suppliers
// @Produce      json
// @Param        id path string true "Supplier ID" format(uuid)
// @Success      200 {object} APIResponse[procurement.SupplierResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c, "supplier")
	if !ok {
		return
	}

	supplier, err := h.directory.GetSupplier(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, supplier)
}

// Create godoc
// @ID           createSupplier
// @Summary      Create a supplier
// @Description  Administrators only. Supplier e-mails are unique.
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        request body procurement.CreateSupplierRequest true "Supplier"
// @Success      201 {object} APIResponse[procurement.SupplierResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /suppliers [post]
func (h *SupplierHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req procurementapp.CreateSupplierRequest
	if !h.bindJSON(c, &req) {
		return
	}

	supplier, err := h.directory.CreateSupplier(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, supplier)
}

// Update godoc
// @ID           updateSupplier
// @Summary      Update a supplier
// @Description  Administrators only. Omitted fields keep their value.
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id path string true "Supplier ID" format(uuid)
// @Param        request body procurement.UpdateSupplierRequest true "Changes"
// @Success      200 {object} APIResponse[procurement.SupplierResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /suppliers/{id} [put]
func (h *SupplierHandler) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "supplier")
	if !ok {
		return
	}
	var req procurementapp.UpdateSupplierRequest
	if !h.bindJSON(c, &req) {
		return
	}

	supplier, err := h.directory.UpdateSupplier(c.Request.Context(), actor, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, supplier)
}

// Monitoring godoc
// @ID           getSupplierMonitoring
// @Summary      Supplier spend this month
// @Description  Approved spend per supplier in the current month against the monthly threshold, largest first
// @Tags         suppliers
// @Produce      json
// @Success      200 {object} APIResponse[procurement.SupplierMonitoringResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /suppliers/monitoring [get]
func (h *SupplierHandler) Monitoring(c *gin.Context) {
	view, err := h.spend.Monitoring(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// Spend godoc
// @ID           getSupplierSpend
// @Summary      Monthly approved spend of one supplier
// @Tags         suppliers
// @Produce      json
// @Param        id path string true "Supplier ID" format(uuid)
// @Param        month query string false "Month as YYYY-MM, defaults to the current month" example(2026-01)
// @Success      200 {object} APIResponse[procurement.MonthlySpendResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /suppliers/{id}/spend [get]
func (h *SupplierHandler) Spend(c *gin.Context) {
	id, ok := h.pathID(c, "supplier")
	if !ok {
		return
	}

	spend, err := h.spend.SupplierSpend(c.Request.Context(), id, c.Query("month"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, spend)
}
