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
	"shop-admin.backend/internal/usecases"
	"shop-admin.backend/pkg/utils"
)

type translationServiceStub struct {
	filter   entities.TranslationFilter
	exportFn func(locale string) (entities.TranslationBundle, error)
	importFn func(locale string, bundle entities.TranslationBundle) (*usecases.ImportResult, error)
}

func (s *translationServiceStub) ListTranslations(_ context.Context, filter entities.TranslationFilter, _ utils.PaginationParams) ([]*entities.Translation, int64, error) {
	s.filter = filter
	return []*entities.Translation{}, 0, nil
}
func (s *translationServiceStub) GetTranslation(context.Context, uuid.UUID) (*entities.Translation, error) {
	return nil, domainerrors.ErrNotFound
}
func (s *translationServiceStub) CreateTranslation(context.Context, *entities.TranslationInput) (*entities.Translation, error) {
	return nil, domainerrors.Conflict("translation already exists")
}
func (s *translationServiceStub) UpdateTranslation(context.Context, uuid.UUID, *entities.TranslationInput) (*entities.Translation, error) {
	return nil, domainerrors.ErrNotFound
}
func (s *translationServiceStub) DeleteTranslation(context.Context, uuid.UUID) error { return nil }
func (s *translationServiceStub) Export(_ context.Context, locale string) (entities.TranslationBundle, error) {
	return s.exportFn(locale)
}
func (s *translationServiceStub) Import(_ context.Context, locale string, bundle entities.TranslationBundle) (*usecases.ImportResult, error) {
	return s.importFn(locale, bundle)
}

func newTranslationRouter(svc translationService) *gin.Engine {
	h := NewTranslationHandler(svc)
	r := gin.New()
	r.GET("/translations", h.ListTranslations)
	r.GET("/translations/export/:locale", h.Export)
	r.POST("/translations/import/:locale", h.Import)
	r.GET("/translations/:id", h.GetTranslation)
	r.DELETE("/translations/:id", h.DeleteTranslation)
	return r
}

func TestTranslationHandler_ListFilter(t *testing.T) {
	svc := &translationServiceStub{}
	w := performRequest(newTranslationRouter(svc), http.MethodGet, "/translations?group=checkout&locale=fr&search=pay", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entities.TranslationFilter{Group: "checkout", Locale: "fr", Search: "pay"}, svc.filter)
}

func TestTranslationHandler_ExportAndImport(t *testing.T) {
	svc := &translationServiceStub{
		exportFn: func(locale string) (entities.TranslationBundle, error) {
			if locale == "xx" {
				return nil, domainerrors.NotFound("language not found")
			}
			return entities.TranslationBundle{"checkout": {"pay": "Payer"}}, nil
		},
		importFn: func(locale string, bundle entities.TranslationBundle) (*usecases.ImportResult, error) {
			assert.Equal(t, "fr", locale)
			assert.Equal(t, "Payer", bundle["checkout"]["pay"])
			return &usecases.ImportResult{Created: 1}, nil
		},
	}
	r := newTranslationRouter(svc)

	w := performRequest(r, http.MethodGet, "/translations/export/fr", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Payer", decodeBody(t, w)["checkout"].(map[string]interface{})["pay"])

	assert.Equal(t, http.StatusNotFound, performRequest(r, http.MethodGet, "/translations/export/xx", nil).Code)

	w = performRequest(r, http.MethodPost, "/translations/import/fr", gin.H{"checkout": gin.H{"pay": "Payer"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["created"])

	w = performRequest(r, http.MethodPost, "/translations/import/fr", `{"checkout": "flat"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTranslationHandler_DeleteNoContent(t *testing.T) {
	w := performRequest(newTranslationRouter(&translationServiceStub{}), http.MethodDelete, "/translations/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
