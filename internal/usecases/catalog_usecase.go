package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/domain/repositories"
	"shop-admin.backend/pkg/utils"
)

// CatalogUsecase manages categories, brands and products
type CatalogUsecase struct {
	categoryRepo repositories.CategoryRepository
	brandRepo    repositories.BrandRepository
	productRepo  repositories.ProductRepository
	taxRateRepo  repositories.TaxRateRepository
	uow          repositories.UnitOfWork
	audit        *AuditService
}

// NewCatalogUsecase creates a new catalog usecase
func NewCatalogUsecase(
	categoryRepo repositories.CategoryRepository,
	brandRepo repositories.BrandRepository,
	productRepo repositories.ProductRepository,
	taxRateRepo repositories.TaxRateRepository,
	uow repositories.UnitOfWork,
	audit *AuditService,
) *CatalogUsecase {
	return &CatalogUsecase{
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		productRepo:  productRepo,
		taxRateRepo:  taxRateRepo,
		uow:          uow,
		audit:        audit,
	}
}

// ---- categories ----

func (u *CatalogUsecase) ListCategories(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.Category, int64, error) {
	return u.categoryRepo.List(ctx, search, pagination)
}

func (u *CatalogUsecase) GetCategory(ctx context.Context, id uuid.UUID) (*entities.Category, error) {
	return u.categoryRepo.GetByID(ctx, id)
}

// CreateCategory creates a category under an optional parent
func (u *CatalogUsecase) CreateCategory(ctx context.Context, input *entities.CategoryInput) (*entities.Category, error) {
	slug, err := u.uniqueSlug(ctx, u.categoryRepo.SlugExists, input.Slug, input.Name, nil)
	if err != nil {
		return nil, err
	}
	if input.ParentID != nil {
		if _, err := u.categoryRepo.GetByID(ctx, *input.ParentID); err != nil {
			if isNotFound(err) {
				return nil, domainerrors.BadRequest("parent category does not exist")
			}
			return nil, err
		}
	}
	category := &entities.Category{
		Name:        strings.TrimSpace(input.Name),
		Slug:        slug,
		ParentID:    input.ParentID,
		Description: input.Description,
		IsActive:    boolOr(input.IsActive, true),
		SortOrder:   input.SortOrder,
	}
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.categoryRepo.Create(ctx, category); err != nil {
			return err
		}
		return u.audit.Record(ctx, "categories", entities.AuditActionCreated, "category", category.ID.String(), nil, category)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory updates a category; the parent cannot be the category itself or one of its descendants
func (u *CatalogUsecase) UpdateCategory(ctx context.Context, id uuid.UUID, input *entities.CategoryInput) (*entities.Category, error) {
	category, err := u.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := cloneOf(category)

	slug, err := u.uniqueSlug(ctx, u.categoryRepo.SlugExists, input.Slug, input.Name, &id)
	if err != nil {
		return nil, err
	}
	if input.ParentID != nil {
		if err := u.checkParent(ctx, id, *input.ParentID); err != nil {
			return nil, err
		}
	}

	category.Name = strings.TrimSpace(input.Name)
	category.Slug = slug
	category.ParentID = input.ParentID
	category.Description = input.Description
	category.IsActive = boolOr(input.IsActive, category.IsActive)
	category.SortOrder = input.SortOrder
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.categoryRepo.Update(ctx, category); err != nil {
			return err
		}
		return u.audit.Record(ctx, "categories", entities.AuditActionUpdated, "category", id.String(), before, category)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (u *CatalogUsecase) checkParent(ctx context.Context, id, parentID uuid.UUID) error {
	cycle := domainerrors.Unprocessable("a category cannot be nested under itself or its descendants", domainerrors.ErrUnprocessable)
	seen := map[uuid.UUID]bool{}
	for cur := &parentID; cur != nil; {
		if *cur == id {
			return cycle
		}
		if seen[*cur] {
			return cycle
		}
		seen[*cur] = true
		parent, err := u.categoryRepo.GetByID(ctx, *cur)
		if err != nil {
			if isNotFound(err) {
				return domainerrors.BadRequest("parent category does not exist")
			}
			return err
		}
		cur = parent.ParentID
	}
	return nil
}

// DeleteCategory deletes a category without children or products
func (u *CatalogUsecase) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := u.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	children, err := u.categoryRepo.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return domainerrors.Unprocessable("category has subcategories", domainerrors.ErrInUse)
	}
	products, err := u.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return domainerrors.Unprocessable("category still has products", domainerrors.ErrInUse)
	}
	return u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.categoryRepo.Delete(ctx, id); err != nil {
			return err
		}
		return u.audit.Record(ctx, "categories", entities.AuditActionDeleted, "category", id.String(), category, nil)
	})
}

// ---- brands ----

func (u *CatalogUsecase) ListBrands(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.Brand, int64, error) {
	return u.brandRepo.List(ctx, search, pagination)
}

func (u *CatalogUsecase) GetBrand(ctx context.Context, id uuid.UUID) (*entities.Brand, error) {
	return u.brandRepo.GetByID(ctx, id)
}

func (u *CatalogUsecase) CreateBrand(ctx context.Context, input *entities.BrandInput) (*entities.Brand, error) {
	slug, err := u.uniqueSlug(ctx, u.brandRepo.SlugExists, input.Slug, input.Name, nil)
	if err != nil {
		return nil, err
	}
	brand := &entities.Brand{
		Name:     strings.TrimSpace(input.Name),
		Slug:     slug,
		LogoURL:  input.LogoURL,
		IsActive: boolOr(input.IsActive, true),
	}
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.brandRepo.Create(ctx, brand); err != nil {
			return err
		}
		return u.audit.Record(ctx, "brands", entities.AuditActionCreated, "brand", brand.ID.String(), nil, brand)
	})
	if err != nil {
		return nil, err
	}
	return brand, nil
}

func (u *CatalogUsecase) UpdateBrand(ctx context.Context, id uuid.UUID, input *entities.BrandInput) (*entities.Brand, error) {
	brand, err := u.brandRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := cloneOf(brand)
	slug, err := u.uniqueSlug(ctx, u.brandRepo.SlugExists, input.Slug, input.Name, &id)
	if err != nil {
		return nil, err
	}
	brand.Name = strings.TrimSpace(input.Name)
	brand.Slug = slug
	brand.LogoURL = input.LogoURL
	brand.IsActive = boolOr(input.IsActive, brand.IsActive)
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.brandRepo.Update(ctx, brand); err != nil {
			return err
		}
		return u.audit.Record(ctx, "brands", entities.AuditActionUpdated, "brand", id.String(), before, brand)
	})
	if err != nil {
		return nil, err
	}
	return brand, nil
}

func (u *CatalogUsecase) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	brand, err := u.brandRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	products, err := u.productRepo.CountByBrand(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return domainerrors.Unprocessable("brand still has products", domainerrors.ErrInUse)
	}
	return u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.brandRepo.Delete(ctx, id); err != nil {
			return err
		}
		return u.audit.Record(ctx, "brands", entities.AuditActionDeleted, "brand", id.String(), brand, nil)
	})
}

// ---- products ----

func (u *CatalogUsecase) ListProducts(ctx context.Context, filter entities.ProductFilter, pagination utils.PaginationParams) ([]*entities.Product, int64, error) {
	return u.productRepo.List(ctx, filter, pagination)
}

func (u *CatalogUsecase) GetProduct(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	return u.productRepo.GetByID(ctx, id)
}

// CreateProduct creates a product with its opening stock
func (u *CatalogUsecase) CreateProduct(ctx context.Context, input *entities.ProductInput) (*entities.Product, error) {
	product := &entities.Product{StockQuantity: input.StockQuantity, IsActive: boolOr(input.IsActive, true)}
	if err := u.applyProductInput(ctx, product, input, nil); err != nil {
		return nil, err
	}
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.productRepo.Create(ctx, product); err != nil {
			return err
		}
		return u.audit.Record(ctx, "products", entities.AuditActionCreated, "product", product.ID.String(), nil, product)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct updates a product. Stock is left alone: it only moves through the stock ledger.
func (u *CatalogUsecase) UpdateProduct(ctx context.Context, id uuid.UUID, input *entities.ProductInput) (*entities.Product, error) {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := cloneOf(product)
	if err := u.applyProductInput(ctx, product, input, &id); err != nil {
		return nil, err
	}
	product.IsActive = boolOr(input.IsActive, product.IsActive)
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.productRepo.Update(ctx, product); err != nil {
			return err
		}
		return u.audit.Record(ctx, "products", entities.AuditActionUpdated, "product", id.String(), before, product)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (u *CatalogUsecase) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.productRepo.Delete(ctx, id); err != nil {
			return err
		}
		return u.audit.Record(ctx, "products", entities.AuditActionDeleted, "product", id.String(), product, nil)
	})
}

func (u *CatalogUsecase) applyProductInput(ctx context.Context, p *entities.Product, input *entities.ProductInput, excludeID *uuid.UUID) error {
	fields := map[string]string{}
	if input.Price.IsNegative() {
		fields["price"] = "must not be negative"
	}
	if input.CompareAtPrice.Valid && !input.CompareAtPrice.Decimal.GreaterThan(input.Price) {
		fields["compareAtPrice"] = "must be greater than price"
	}
	if input.CostPrice.Valid && input.CostPrice.Decimal.IsNegative() {
		fields["costPrice"] = "must not be negative"
	}
	if len(fields) > 0 {
		return domainerrors.ValidationFailed(fields)
	}

	slug, err := u.uniqueSlug(ctx, u.productRepo.SlugExists, input.Slug, input.Name, excludeID)
	if err != nil {
		return err
	}
	sku := strings.ToUpper(strings.TrimSpace(input.SKU))
	taken, err := u.productRepo.SKUExists(ctx, sku, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domainerrors.Conflict("sku already in use")
	}
	if input.CategoryID != nil {
		if _, err := u.categoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
			return missingRef(err, "category")
		}
	}
	if input.BrandID != nil {
		if _, err := u.brandRepo.GetByID(ctx, *input.BrandID); err != nil {
			return missingRef(err, "brand")
		}
	}
	if input.TaxRateID != nil {
		if _, err := u.taxRateRepo.GetByID(ctx, *input.TaxRateID); err != nil {
			return missingRef(err, "tax rate")
		}
	}

	p.Name = strings.TrimSpace(input.Name)
	p.Slug = slug
	p.SKU = sku
	p.Description = input.Description
	p.Price = input.Price.Round(2)
	p.CompareAtPrice = roundNull(input.CompareAtPrice)
	p.CostPrice = roundNull(input.CostPrice)
	p.CategoryID = input.CategoryID
	p.BrandID = input.BrandID
	p.TaxRateID = input.TaxRateID
	return nil
}

func (u *CatalogUsecase) uniqueSlug(
	ctx context.Context,
	exists func(context.Context, string, *uuid.UUID) (bool, error),
	slug, name string,
	excludeID *uuid.UUID,
) (string, error) {
	slug, err := resolveSlug(slug, name)
	if err != nil {
		return "", err
	}
	taken, err := exists(ctx, slug, excludeID)
	if err != nil {
		return "", err
	}
	if taken {
		return "", domainerrors.Conflict("slug already in use")
	}
	return slug, nil
}

func missingRef(err error, what string) error {
	if isNotFound(err) {
		return domainerrors.BadRequest(what + " does not exist")
	}
	return err
}

func roundNull(d decimal.NullDecimal) decimal.NullDecimal {
	if !d.Valid {
		return d
	}
	return decimal.NewNullDecimal(d.Decimal.Round(2))
}
