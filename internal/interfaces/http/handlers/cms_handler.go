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

type cmsService interface {
	ListPages(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.CmsPage, int64, error)
	GetPage(ctx context.Context, id uuid.UUID) (*entities.CmsPage, error)
	CreatePage(ctx context.Context, input *entities.CmsPageInput) (*entities.CmsPage, error)
	UpdatePage(ctx context.Context, id uuid.UUID, input *entities.CmsPageInput) (*entities.CmsPage, error)
	DeletePage(ctx context.Context, id uuid.UUID) error
	Publish(ctx context.Context, id uuid.UUID) (*entities.CmsPage, error)
	Unpublish(ctx context.Context, id uuid.UUID) (*entities.CmsPage, error)
}

type CmsHandler struct {
	pages cmsService
}

func NewCmsHandler(pages cmsService) *CmsHandler {
	return &CmsHandler{pages: pages}
}

// GET /api/v1/admin/cms-pages
func (h *CmsHandler) ListPages(c *gin.Context) {
	p := paginationFrom(c)
	items, total, err := h.pages.ListPages(c.Request.Context(), c.Query("search"), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	listed(c, items, total, p)
}

// GET /api/v1/admin/cms-pages/:id
func (h *CmsHandler) GetPage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, err := h.pages.GetPage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

// POST /api/v1/admin/cms-pages
func (h *CmsHandler) CreatePage(c *gin.Context) {
	var input entities.CmsPageInput
	if !bindJSON(c, &input) {
		return
	}
	page, err := h.pages.CreatePage(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, page)
}

// PUT /api/v1/admin/cms-pages/:id
func (h *CmsHandler) UpdatePage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input entities.CmsPageInput
	if !bindJSON(c, &input) {
		return
	}
	page, err := h.pages.UpdatePage(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

// DELETE /api/v1/admin/cms-pages/:id
func (h *CmsHandler) DeletePage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.pages.DeletePage(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/v1/admin/cms-pages/:id/publish
func (h *CmsHandler) Publish(c *gin.Context) {
	h.transition(c, h.pages.Publish)
}

// POST /api/v1/admin/cms-pages/:id/unpublish
func (h *CmsHandler) Unpublish(c *gin.Context) {
	h.transition(c, h.pages.Unpublish)
}

func (h *CmsHandler) transition(c *gin.Context, fn func(context.Context, uuid.UUID) (*entities.CmsPage, error)) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, err := fn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}
