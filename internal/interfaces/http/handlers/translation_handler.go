package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/internal/interfaces/http/response"
	"shop-admin.backend/internal/usecases"
	"shop-admin.backend/pkg/utils"
)

type translationService interface {
	ListTranslations(ctx context.Context, filter entities.TranslationFilter, pagination utils.PaginationParams) ([]*entities.Translation, int64, error)
	GetTranslation(ctx context.Context, id uuid.UUID) (*entities.Translation, error)
	CreateTranslation(ctx context.Context, input *entities.TranslationInput) (*entities.Translation, error)
	UpdateTranslation(ctx context.Context, id uuid.UUID, input *entities.TranslationInput) (*entities.Translation, error)
	DeleteTranslation(ctx context.Context, id uuid.UUID) error
	Export(ctx context.Context, locale string) (entities.TranslationBundle, error)
	Import(ctx context.Context, locale string, bundle entities.TranslationBundle) (*usecases.ImportResult, error)
}

// TranslationHandler handles translation strings and locale bundles
type TranslationHandler struct {
	translations translationService
}

func NewTranslationHandler(translations translationService) *TranslationHandler {
	return &TranslationHandler{translations: translations}
}

// GET /api/v1/admin/translations
func (h *TranslationHandler) ListTranslations(c *gin.Context) {
	filter := entities.TranslationFilter{
		Group:  c.Query("group"),
		Locale: c.Query("locale"),
		Search: c.Query("search"),
	}
	p := paginationFrom(c)
	items, total, err := h.translations.ListTranslations(c.Request.Context(), filter, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	listed(c, items, total, p)
}

// GET /api/v1/admin/translations/:id
func (h *TranslationHandler) GetTranslation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	t, err := h.translations.GetTranslation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, t)
}

// POST /api/v1/admin/translations
func (h *TranslationHandler) CreateTranslation(c *gin.Context) {
	var input entities.TranslationInput
	if !bindJSON(c, &input) {
		return
	}
	t, err := h.translations.CreateTranslation(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, t)
}

// PUT /api/v1/admin/translations/:id
func (h *TranslationHandler) UpdateTranslation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input entities.TranslationInput
	if !bindJSON(c, &input) {
		return
	}
	t, err := h.translations.UpdateTranslation(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, t)
}

// DELETE /api/v1/admin/translations/:id
func (h *TranslationHandler) DeleteTranslation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.translations.DeleteTranslation(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Export returns group -> key -> value, falling back to the default locale
// GET /api/v1/admin/translations/export/:locale
func (h *TranslationHandler) Export(c *gin.Context) {
	bundle, err := h.translations.Export(c.Request.Context(), c.Param("locale"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, bundle)
}

// POST /api/v1/admin/translations/import/:locale
func (h *TranslationHandler) Import(c *gin.Context) {
	var bundle entities.TranslationBundle
	if !bindJSON(c, &bundle) {
		return
	}
	res, err := h.translations.Import(c.Request.Context(), c.Param("locale"), bundle)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}
