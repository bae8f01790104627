package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/pkg/utils"
)

type auditLogServiceStub struct {
	filter entities.AuditLogFilter
}

func (s *auditLogServiceStub) List(_ context.Context, filter entities.AuditLogFilter, _ utils.PaginationParams) ([]*entities.AuditLog, int64, error) {
	s.filter = filter
	return []*entities.AuditLog{{ID: uuid.New(), Module: filter.Module}}, 1, nil
}
func (s *auditLogServiceStub) GetByID(context.Context, uuid.UUID) (*entities.AuditLog, error) {
	return nil, domainerrors.ErrNotFound
}

func TestAuditLogHandler_ListFilters(t *testing.T) {
	stub := &auditLogServiceStub{}
	h := NewAuditLogHandler(stub)
	r := gin.New()
	r.GET("/audit-logs", h.ListAuditLogs)
	r.GET("/audit-logs/:id", h.GetAuditLog)
	userID := uuid.New()

	w := performRequest(r, http.MethodGet, "/audit-logs?module=settings&action=updated&subjectType=setting_group&subjectId=general&userId="+userID.String()+"&from=2024-05-01T00:00:00Z", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "settings", stub.filter.Module)
	assert.Equal(t, "updated", stub.filter.Action)
	assert.Equal(t, "setting_group", stub.filter.SubjectType)
	assert.Equal(t, "general", stub.filter.SubjectID)
	require.NotNil(t, stub.filter.UserID)
	require.NotNil(t, stub.filter.From)
	assert.Nil(t, stub.filter.To)

	assert.Equal(t, http.StatusBadRequest, performRequest(r, http.MethodGet, "/audit-logs?to=yesterday", nil).Code)
	assert.Equal(t, http.StatusNotFound, performRequest(r, http.MethodGet, "/audit-logs/"+uuid.NewString(), nil).Code)
}
