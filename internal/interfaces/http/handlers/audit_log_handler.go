package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"rugcare.backend/internal/domain/entities"
	domainerrors "rugcare.backend/internal/domain/errors"
	"rugcare.backend/internal/interfaces/http/middleware"
	"rugcare.backend/internal/interfaces/http/response"
	"rugcare.backend/pkg/utils"
)

type AuditLogService interface {
	ListAuditLogs(ctx context.Context, userID string, pagination utils.PaginationParams) ([]*entities.AuditLogView, utils.PaginationMeta, error)
}

// AuditLogHandler handles the staff activity feed
type AuditLogHandler struct {
	auditLogUsecase AuditLogService
}

// NewAuditLogHandler creates a new audit log handler
func NewAuditLogHandler(auditLogUsecase AuditLogService) *AuditLogHandler {
	return &AuditLogHandler{auditLogUsecase: auditLogUsecase}
}

// ListAuditLogs lists the caller's audit entries
// GET /api/v1/audit-logs?page=&limit=
func (h *AuditLogHandler) ListAuditLogs(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(utils.DefaultPageLimit)))

	logs, meta, err := h.auditLogUsecase.ListAuditLogs(c.Request.Context(), userID, utils.GetPaginationParams(page, limit))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"auditLogs":  logs,
		"pagination": meta,
	})
}
