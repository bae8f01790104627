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

type notificationService interface {
	ListTemplates(ctx context.Context, event string, pagination utils.PaginationParams) ([]*entities.NotificationTemplate, int64, error)
	GetTemplate(ctx context.Context, id uuid.UUID) (*entities.NotificationTemplate, error)
	CreateTemplate(ctx context.Context, input *entities.NotificationTemplateInput) (*entities.NotificationTemplate, error)
	UpdateTemplate(ctx context.Context, id uuid.UUID, input *entities.NotificationTemplateInput) (*entities.NotificationTemplate, error)
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
	Preview(ctx context.Context, id uuid.UUID, data map[string]interface{}) (*entities.RenderedNotification, error)
	ListLogs(ctx context.Context, filter entities.NotificationLogFilter, pagination utils.PaginationParams) ([]*entities.NotificationLog, int64, error)
}

// NotificationHandler handles notification templates and the delivery log
type NotificationHandler struct {
	notifications notificationService
}

func NewNotificationHandler(notifications notificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// GET /api/v1/admin/notification-templates
func (h *NotificationHandler) ListTemplates(c *gin.Context) {
	p := paginationFrom(c)
	items, total, err := h.notifications.ListTemplates(c.Request.Context(), c.Query("event"), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	listed(c, items, total, p)
}

// GET /api/v1/admin/notification-templates/:id
func (h *NotificationHandler) GetTemplate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	tpl, err := h.notifications.GetTemplate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, tpl)
}

// POST /api/v1/admin/notification-templates
func (h *NotificationHandler) CreateTemplate(c *gin.Context) {
	var input entities.NotificationTemplateInput
	if !bindJSON(c, &input) {
		return
	}
	tpl, err := h.notifications.CreateTemplate(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, tpl)
}

// PUT /api/v1/admin/notification-templates/:id
func (h *NotificationHandler) UpdateTemplate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input entities.NotificationTemplateInput
	if !bindJSON(c, &input) {
		return
	}
	tpl, err := h.notifications.UpdateTemplate(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, tpl)
}

// DELETE /api/v1/admin/notification-templates/:id
func (h *NotificationHandler) DeleteTemplate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.notifications.DeleteTemplate(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PreviewTemplate renders a template against sample data, nothing is sent
// POST /api/v1/admin/notification-templates/:id/preview
func (h *NotificationHandler) PreviewTemplate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input struct {
		Data map[string]interface{} `json:"data"`
	}
	if !bindJSON(c, &input) {
		return
	}
	rendered, err := h.notifications.Preview(c.Request.Context(), id, input.Data)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, rendered)
}

// GET /api/v1/admin/notification-logs
func (h *NotificationHandler) ListLogs(c *gin.Context) {
	filter := entities.NotificationLogFilter{
		Channel: entities.NotificationChannel(c.Query("channel")),
		Status:  entities.NotificationStatus(c.Query("status")),
	}
	p := paginationFrom(c)
	items, total, err := h.notifications.ListLogs(c.Request.Context(), filter, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	listed(c, items, total, p)
}
