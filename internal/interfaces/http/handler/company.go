package handler

import (
	"github.com/gin-gonic/gin"
	procurementapp "github.com/umitgh/procurement-system/internal/application/procurement"
)

// CompanyHandler handles the buying companies orders are issued for
type CompanyHandler struct {
	BaseHandler
	directory *procurementapp.DirectoryService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(directory *procurementapp.DirectoryService) *CompanyHandler {
	return &CompanyHandler{directory: directory}
}

// List godoc
// @ID           listCompanies
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Items per page" default(20) maximum(100)
// @Param        search query string false "Name"
// @Success      200 {object} APIResponse[[]procurement.CompanyResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	var filter procurementapp.DirectoryListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	page, err := h.directory.ListCompanies(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// Create godoc
// @ID           createCompany
// @Summary      Create a company
// @Description  Administrators only
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        request body procurement.CreateCompanyRequest true "Company"
// @Success      201 {object} APIResponse[procurement.CompanyResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req procurementapp.CreateCompanyRequest
	if !h.bindJSON(c, &req) {
		return
	}

	company, err := h.directory.CreateCompany(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, company)
}
