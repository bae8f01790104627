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

type userService interface {
	ListUsers(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.User, int64, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error)
	CreateUser(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *entities.UpdateUserInput) (*entities.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// UserHandler manages admin accounts
type UserHandler struct {
	users userService
}

func NewUserHandler(users userService) *UserHandler {
	return &UserHandler{users: users}
}

// GET /api/v1/admin/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	p := paginationFrom(c)
	users, total, err := h.users.ListUsers(c.Request.Context(), c.Query("search"), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	listed(c, users, total, p)
}

// GET /api/v1/admin/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// POST /api/v1/admin/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input entities.CreateUserInput
	if !bindJSON(c, &input) {
		return
	}
	user, err := h.users.CreateUser(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, user)
}

// PATCH /api/v1/admin/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input entities.UpdateUserInput
	if !bindJSON(c, &input) {
		return
	}
	user, err := h.users.UpdateUser(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// DELETE /api/v1/admin/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
