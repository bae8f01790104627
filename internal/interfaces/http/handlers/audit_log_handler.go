package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/internal/interfaces/http/response"
	"shop-admin.backend/pkg/utils"
)

type auditLogService interface {
	List(ctx context.Context, filter entities.AuditLogFilter, pagination utils.PaginationParams) ([]*entities.AuditLog, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.AuditLog, error)
}

// AuditLogHandler exposes the read-only audit trail
type AuditLogHandler struct {
	audit auditLogService
}

func NewAuditLogHandler(audit auditLogService) *AuditLogHandler {
	return &AuditLogHandler{audit: audit}
}

// ListAuditLogs lists audit entries, newest first
// GET /api/v1/admin/audit-logs
func (h *AuditLogHandler) ListAuditLogs(c *gin.Context) {
	filter := entities.AuditLogFilter{
		Module:      c.Query("module"),
		Action:      c.Query("action"),
		SubjectType: c.Query("subjectType"),
		SubjectID:   c.Query("subjectId"),
	}
	var ok bool
	if filter.UserID, ok = queryUUID(c, "userId"); !ok {
		return
	}
	if filter.From, ok = queryTime(c, "from"); !ok {
		return
	}
	if filter.To, ok = queryTime(c, "to"); !ok {
		return
	}

	p := paginationFrom(c)
	items, total, err := h.audit.List(c.Request.Context(), filter, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	listed(c, items, total, p)
}

// GetAuditLog returns one entry with its snapshots
// GET /api/v1/admin/audit-logs/:id
func (h *AuditLogHandler) GetAuditLog(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	entry, err := h.audit.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, entry)
}
