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

type providerService interface {
	ListProviders(ctx context.Context, providerType entities.ProviderType, pagination utils.PaginationParams) ([]*entities.Provider, int64, error)
	GetProvider(ctx context.Context, id uuid.UUID) (*entities.Provider, error)
	CreateProvider(ctx context.Context, input *entities.ProviderInput) (*entities.Provider, error)
	UpdateProvider(ctx context.Context, id uuid.UUID, input *entities.ProviderInput) (*entities.Provider, error)
	DeleteProvider(ctx context.Context, id uuid.UUID) error
	PutSecrets(ctx context.Context, id uuid.UUID, values map[string]string) (*entities.Provider, error)
	Enable(ctx context.Context, id uuid.UUID) (*entities.Provider, error)
	Disable(ctx context.Context, id uuid.UUID) (*entities.Provider, error)
	TestConnection(ctx context.Context, id uuid.UUID) (*entities.ProviderTestResult, error)
}

// ProviderHandler handles payment, shipping and messaging provider configs.
// Secret values never leave the service unmasked.
type ProviderHandler struct {
	providers providerService
}

func NewProviderHandler(providers providerService) *ProviderHandler {
	return &ProviderHandler{providers: providers}
}

// GET /api/v1/admin/providers
func (h *ProviderHandler) ListProviders(c *gin.Context) {
	p := paginationFrom(c)
	items, total, err := h.providers.ListProviders(c.Request.Context(), entities.ProviderType(c.Query("type")), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	listed(c, items, total, p)
}

// GET /api/v1/admin/providers/:id
func (h *ProviderHandler) GetProvider(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	provider, err := h.providers.GetProvider(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, provider)
}

// POST /api/v1/admin/providers
func (h *ProviderHandler) CreateProvider(c *gin.Context) {
	var input entities.ProviderInput
	if !bindJSON(c, &input) {
		return
	}
	provider, err := h.providers.CreateProvider(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, provider)
}

// PUT /api/v1/admin/providers/:id
func (h *ProviderHandler) UpdateProvider(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input entities.ProviderInput
	if !bindJSON(c, &input) {
		return
	}
	provider, err := h.providers.UpdateProvider(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, provider)
}

// DELETE /api/v1/admin/providers/:id
func (h *ProviderHandler) DeleteProvider(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.providers.DeleteProvider(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PutSecrets upserts credentials; an empty value removes the key
// PUT /api/v1/admin/providers/:id/secrets
func (h *ProviderHandler) PutSecrets(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input struct {
		Values map[string]string `json:"values" binding:"required"`
	}
	if !bindJSON(c, &input) {
		return
	}
	provider, err := h.providers.PutSecrets(c.Request.Context(), id, input.Values)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, provider)
}

// POST /api/v1/admin/providers/:id/enable
func (h *ProviderHandler) Enable(c *gin.Context) {
	h.toggle(c, h.providers.Enable)
}

// POST /api/v1/admin/providers/:id/disable
func (h *ProviderHandler) Disable(c *gin.Context) {
	h.toggle(c, h.providers.Disable)
}

func (h *ProviderHandler) toggle(c *gin.Context, fn func(context.Context, uuid.UUID) (*entities.Provider, error)) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	provider, err := fn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, provider)
}

// TestConnection reports the outcome in the body; a failed check is still 200
// POST /api/v1/admin/providers/:id/test
func (h *ProviderHandler) TestConnection(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	result, err := h.providers.TestConnection(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}
