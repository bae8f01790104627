package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/internal/interfaces/http/middleware"
	"shop-admin.backend/internal/interfaces/http/response"
	"shop-admin.backend/pkg/logger"
)

type settingsService interface {
	ListGroups() []entities.SettingGroup
	GetGroup(ctx context.Context, group string) (map[string]string, error)
	UpdateGroup(ctx context.Context, group string, values map[string]string) (map[string]string, error)
}

// SettingsPermission returns the permission guarding a settings page action
func SettingsPermission(group, action string) string {
	return "settings." + group + "." + action
}

// SettingsHandler serves the settings pages
type SettingsHandler struct {
	settings settingsService
	checker  middleware.PermissionChecker
}

func NewSettingsHandler(settings settingsService, checker middleware.PermissionChecker) *SettingsHandler {
	return &SettingsHandler{settings: settings, checker: checker}
}

// ListGroups returns the definitions of every page the caller may view
// GET /api/v1/admin/settings
func (h *SettingsHandler) ListGroups(c *gin.Context) {
	role, _ := middleware.GetUserRole(c)
	visible := make([]entities.SettingGroup, 0)
	for _, g := range h.settings.ListGroups() {
		ok, err := h.checker.HasAnyPermission(c.Request.Context(), role, SettingsPermission(g.Name, "view"))
		if err != nil {
			logger.Warn(c.Request.Context(), "Settings permission check failed", zap.String("group", g.Name), zap.Error(err))
			continue
		}
		if ok {
			visible = append(visible, g)
		}
	}
	response.Success(c, http.StatusOK, gin.H{"items": visible})
}

// GetGroup returns stored values overlaid on defaults, secrets masked
// GET /api/v1/admin/settings/:group
func (h *SettingsHandler) GetGroup(c *gin.Context) {
	group := c.Param("group")
	values, err := h.settings.GetGroup(c.Request.Context(), group)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"group": group, "values": values})
}

// UpdateGroup saves a settings page
// PUT /api/v1/admin/settings/:group
func (h *SettingsHandler) UpdateGroup(c *gin.Context) {
	var input struct {
		Values map[string]string `json:"values" binding:"required"`
	}
	if !bindJSON(c, &input) {
		return
	}

	group := c.Param("group")
	values, err := h.settings.UpdateGroup(c.Request.Context(), group, input.Values)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"group": group, "values": values})
}
