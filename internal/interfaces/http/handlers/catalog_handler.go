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

type catalogService interface {
	ListCategories(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.Category, int64, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*entities.Category, error)
	CreateCategory(ctx context.Context, input *entities.CategoryInput) (*entities.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input *entities.CategoryInput) (*entities.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	ListBrands(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.Brand, int64, error)
	GetBrand(ctx context.Context, id uuid.UUID) (*entities.Brand, error)
	CreateBrand(ctx context.Context, input *entities.BrandInput) (*entities.Brand, error)
	UpdateBrand(ctx context.Context, id uuid.UUID, input *entities.BrandInput) (*entities.Brand, error)
	DeleteBrand(ctx context.Context, id uuid.UUID) error

	ListProducts(ctx context.Context, filter entities.ProductFilter, pagination utils.PaginationParams) ([]*entities.Product, int64, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	CreateProduct(ctx context.Context, input *entities.ProductInput) (*entities.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *entities.ProductInput) (*entities.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// CatalogHandler manages categories, brands and products
type CatalogHandler struct {
	catalog catalogService
}

func NewCatalogHandler(catalog catalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ---- categories ----

// GET /api/v1/admin/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	p := paginationFrom(c)
	items, total, err := h.catalog.ListCategories(c.Request.Context(), c.Query("search"), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	listed(c, items, total, p)
}

// GET /api/v1/admin/categories/:id
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	category, err := h.catalog.GetCategory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, category)
}

// POST /api/v1/admin/categories
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var input entities.CategoryInput
	if !bindJSON(c, &input) {
		return
	}
	category, err := h.catalog.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, category)
}

// PUT /api/v1/admin/categories/:id
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input entities.CategoryInput
	if !bindJSON(c, &input) {
		return
	}
	category, err := h.catalog.UpdateCategory(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, category)
}

// DELETE /api/v1/admin/categories/:id
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- brands ----

// GET /api/v1/admin/brands
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	p := paginationFrom(c)
	items, total, err := h.catalog.ListBrands(c.Request.Context(), c.Query("search"), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	listed(c, items, total, p)
}

// GET /api/v1/admin/brands/:id
func (h *CatalogHandler) GetBrand(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	brand, err := h.catalog.GetBrand(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, brand)
}

// POST /api/v1/admin/brands
func (h *CatalogHandler) CreateBrand(c *gin.Context) {
	var input entities.BrandInput
	if !bindJSON(c, &input) {
		return
	}
	brand, err := h.catalog.CreateBrand(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, brand)
}

// PUT /api/v1/admin/brands/:id
func (h *CatalogHandler) UpdateBrand(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input entities.BrandInput
	if !bindJSON(c, &input) {
		return
	}
	brand, err := h.catalog.UpdateBrand(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, brand)
}

// DELETE /api/v1/admin/brands/:id
func (h *CatalogHandler) DeleteBrand(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteBrand(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- products ----

// ListProducts supports search, categoryId, brandId and active filters
// GET /api/v1/admin/products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filter := entities.ProductFilter{Search: c.Query("search")}
	var ok bool
	if filter.CategoryID, ok = queryUUID(c, "categoryId"); !ok {
		return
	}
	if filter.BrandID, ok = queryUUID(c, "brandId"); !ok {
		return
	}
	if filter.IsActive, ok = queryBool(c, "active"); !ok {
		return
	}

	p := paginationFrom(c)
	items, total, err := h.catalog.ListProducts(c.Request.Context(), filter, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	listed(c, items, total, p)
}

// GET /api/v1/admin/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, product)
}

// POST /api/v1/admin/products
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var input entities.ProductInput
	if !bindJSON(c, &input) {
		return
	}
	product, err := h.catalog.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, product)
}

// PUT /api/v1/admin/products/:id
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input entities.ProductInput
	if !bindJSON(c, &input) {
		return
	}
	product, err := h.catalog.UpdateProduct(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, product)
}

// DELETE /api/v1/admin/products/:id
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
