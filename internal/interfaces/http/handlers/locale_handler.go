package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/internal/interfaces/http/response"
)

type localeService interface {
	ListCurrencies(ctx context.Context) ([]*entities.Currency, error)
	GetCurrency(ctx context.Context, id uuid.UUID) (*entities.Currency, error)
	CreateCurrency(ctx context.Context, input *entities.CurrencyInput) (*entities.Currency, error)
	UpdateCurrency(ctx context.Context, id uuid.UUID, input *entities.CurrencyInput) (*entities.Currency, error)
	SetDefaultCurrency(ctx context.Context, id uuid.UUID) (*entities.Currency, error)
	DeleteCurrency(ctx context.Context, id uuid.UUID) error

	ListLanguages(ctx context.Context) ([]*entities.Language, error)
	GetLanguage(ctx context.Context, id uuid.UUID) (*entities.Language, error)
	CreateLanguage(ctx context.Context, input *entities.LanguageInput) (*entities.Language, error)
	UpdateLanguage(ctx context.Context, id uuid.UUID, input *entities.LanguageInput) (*entities.Language, error)
	SetDefaultLanguage(ctx context.Context, id uuid.UUID) (*entities.Language, error)
	DeleteLanguage(ctx context.Context, id uuid.UUID) error
}

// LocaleHandler handles currencies and languages
type LocaleHandler struct {
	locales localeService
}

func NewLocaleHandler(locales localeService) *LocaleHandler {
	return &LocaleHandler{locales: locales}
}

// GET /api/v1/admin/currencies
func (h *LocaleHandler) ListCurrencies(c *gin.Context) {
	items, err := h.locales.ListCurrencies(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GET /api/v1/admin/currencies/:id
func (h *LocaleHandler) GetCurrency(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	currency, err := h.locales.GetCurrency(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, currency)
}

// POST /api/v1/admin/currencies
func (h *LocaleHandler) CreateCurrency(c *gin.Context) {
	var input entities.CurrencyInput
	if !bindJSON(c, &input) {
		return
	}
	currency, err := h.locales.CreateCurrency(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, currency)
}

// PUT /api/v1/admin/currencies/:id
func (h *LocaleHandler) UpdateCurrency(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input entities.CurrencyInput
	if !bindJSON(c, &input) {
		return
	}
	currency, err := h.locales.UpdateCurrency(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, currency)
}

// POST /api/v1/admin/currencies/:id/default
func (h *LocaleHandler) SetDefaultCurrency(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	currency, err := h.locales.SetDefaultCurrency(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, currency)
}

// DELETE /api/v1/admin/currencies/:id
func (h *LocaleHandler) DeleteCurrency(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.locales.DeleteCurrency(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/v1/admin/languages
func (h *LocaleHandler) ListLanguages(c *gin.Context) {
	items, err := h.locales.ListLanguages(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GET /api/v1/admin/languages/:id
func (h *LocaleHandler) GetLanguage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	lang, err := h.locales.GetLanguage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, lang)
}

// POST /api/v1/admin/languages
func (h *LocaleHandler) CreateLanguage(c *gin.Context) {
	var input entities.LanguageInput
	if !bindJSON(c, &input) {
		return
	}
	lang, err := h.locales.CreateLanguage(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, lang)
}

// PUT /api/v1/admin/languages/:id
func (h *LocaleHandler) UpdateLanguage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input entities.LanguageInput
	if !bindJSON(c, &input) {
		return
	}
	lang, err := h.locales.UpdateLanguage(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, lang)
}

// POST /api/v1/admin/languages/:id/default
func (h *LocaleHandler) SetDefaultLanguage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	lang, err := h.locales.SetDefaultLanguage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, lang)
}

// DELETE /api/v1/admin/languages/:id
func (h *LocaleHandler) DeleteLanguage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.locales.DeleteLanguage(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
