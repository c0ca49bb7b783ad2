package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	procurementapp "github.com/umitgh/procurement-system/internal/application/procurement"
)

// EmailLogHandler exposes the e-mail audit trail
type EmailLogHandler struct {
	BaseHandler
	logs *procurementapp.EmailLogService
}

// NewEmailLogHandler creates a new EmailLogHandler
func NewEmailLogHandler(logs *procurementapp.EmailLogService) *EmailLogHandler {
	return &EmailLogHandler{logs: logs}
}

// Recent godoc
// @ID           listEmailLogs
// @Summary      Recent e-mail send attempts
// @Description  Newest first. Failed attempts carry the delivery error, e.g. "SMTP not configured".
// @Tags         system
// @Produce      json
// @Param        limit query int false "Number of rows" default(50) maximum(500)
// @Success      200 {object} APIResponse[[]procurement.EmailLogResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /system/email-logs [get]
func (h *EmailLogHandler) Recent(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.BadRequest(c, "limit must be a positive integer")
			return
		}
		limit = n
	}

	logs, err := h.logs.Recent(c.Request.Context(), actor, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, logs)
}
