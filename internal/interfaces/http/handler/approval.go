package handler

import (
	"github.com/gin-gonic/gin"
	procurementapp "github.com/umitgh/procurement-system/internal/application/procurement"
)

// ApprovalHandler serves the approver's side of the workflow
type ApprovalHandler struct {
	BaseHandler
	approvals *procurementapp.ApprovalService
}

// NewApprovalHandler creates a new ApprovalHandler
func NewApprovalHandler(approvals *procurementapp.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{approvals: approvals}
}

// ListPending godoc
// @ID           listPendingApprovals
// @Summary      Approvals waiting for me
// @Description  PENDING approvals assigned to the caller whose lower levels are already approved, oldest first
// @Tags         approvals
// @Produce      json
// @Success      200 {object} APIResponse[[]procurement.ApprovalResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /approvals [get]
func (h *ApprovalHandler) ListPending(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	approvals, err := h.approvals.ListPendingForApprover(c.Request.Context(), actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, approvals)
}

// CountPending godoc
// @ID           countPendingApprovals
// @Summary      Number of approvals waiting for me
// @Tags         approvals
// @Produce      json
// @Success      200 {object} APIResponse[CountData]
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /approvals/count [get]
func (h *ApprovalHandler) CountPending(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	count, err := h.approvals.CountPendingForApprover(c.Request.Context(), actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, CountData{Count: count})
}

// Decide godoc
// @ID           decideApproval
// @Summary      Approve or reject
// @Description  Record the caller's decision on one approval. A rejection rejects the purchase order; the last approval approves it.
// @Tags         approvals
// @Accept       json
// @Produce      json
// @Param        id path string true "Approval ID" format(uuid)
// @Param        request body procurement.DecisionRequest true "Decision"
// @Success      200 {object} APIResponse[procurement.DecisionResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /approvals/{id} [put]
func (h *ApprovalHandler) Decide(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "approval")
	if !ok {
		return
	}
	var req procurementapp.DecisionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.approvals.ProcessApproval(c.Request.Context(), actor, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
