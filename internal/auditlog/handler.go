package auditlog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{Service: s}
}

// List godoc
// @Summary List audit logs
// @Description Paginated audit trail of event write operations, newest first
// @Tags auditlogs
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param action query string false "Filter by action"
// @Param status query string false "Filter by status (success/failure)"
// @Success 200 {object} PaginatedAuditLogs
// @Router /api/auditlogs [get]
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := AuditLogFilter{
		Action: c.Query("action"),
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	result, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch audit logs"})
		return
	}

	c.JSON(http.StatusOK, result)
}
