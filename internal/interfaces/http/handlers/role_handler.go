package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/internal/interfaces/http/response"
)

type roleService interface {
	ListRoles(ctx context.Context) ([]*entities.Role, error)
	GetRole(ctx context.Context, id uuid.UUID) (*entities.Role, error)
	ListPermissions(ctx context.Context) ([]*entities.Permission, error)
	CreateRole(ctx context.Context, input *entities.RoleInput) (*entities.Role, error)
	UpdateRole(ctx context.Context, id uuid.UUID, input *entities.RoleInput) (*entities.Role, error)
	SyncPermissions(ctx context.Context, id uuid.UUID, names []string) (*entities.Role, error)
	DeleteRole(ctx context.Context, id uuid.UUID) error
}

// RoleHandler manages roles and the permission catalogue
type RoleHandler struct {
	roles roleService
}

func NewRoleHandler(roles roleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

// GET /api/v1/admin/roles
func (h *RoleHandler) ListRoles(c *gin.Context) {
	roles, err := h.roles.ListRoles(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": roles})
}

// GET /api/v1/admin/roles/:id
func (h *RoleHandler) GetRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	role, err := h.roles.GetRole(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, role)
}

// GET /api/v1/admin/permissions
func (h *RoleHandler) ListPermissions(c *gin.Context) {
	perms, err := h.roles.ListPermissions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": perms})
}

// POST /api/v1/admin/roles
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var input entities.RoleInput
	if !bindJSON(c, &input) {
		return
	}
	role, err := h.roles.CreateRole(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, role)
}

// PUT /api/v1/admin/roles/:id
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input entities.RoleInput
	if !bindJSON(c, &input) {
		return
	}
	role, err := h.roles.UpdateRole(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, role)
}

// SyncPermissions replaces a role's permission set
// PUT /api/v1/admin/roles/:id/permissions
func (h *RoleHandler) SyncPermissions(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input struct {
		Permissions []string `json:"permissions"`
	}
	if !bindJSON(c, &input) {
		return
	}
	role, err := h.roles.SyncPermissions(c.Request.Context(), id, input.Permissions)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, role)
}

// DELETE /api/v1/admin/roles/:id
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.roles.DeleteRole(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
