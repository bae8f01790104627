package repositories

import (
	"context"

	"github.com/google/uuid"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/pkg/utils"
)

// CurrencyRepository defines currency data operations
type CurrencyRepository interface {
	Create(ctx context.Context, currency *entities.Currency) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Currency, error)
	GetByCode(ctx context.Context, code string) (*entities.Currency, error)
	GetDefault(ctx context.Context) (*entities.Currency, error)
	Update(ctx context.Context, currency *entities.Currency) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entities.Currency, error)
	Count(ctx context.Context) (int64, error)
	ClearDefault(ctx context.Context) error
}

// LanguageRepository defines language data operations
type LanguageRepository interface {
	Create(ctx context.Context, language *entities.Language) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Language, error)
	GetByCode(ctx context.Context, code string) (*entities.Language, error)
	GetDefault(ctx context.Context) (*entities.Language, error)
	Update(ctx context.Context, language *entities.Language) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entities.Language, error)
	Count(ctx context.Context) (int64, error)
	ClearDefault(ctx context.Context) error
}

// TranslationRepository defines translation data operations
type TranslationRepository interface {
	Create(ctx context.Context, translation *entities.Translation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Translation, error)
	GetByKey(ctx context.Context, group, key, locale string) (*entities.Translation, error)
	Update(ctx context.Context, translation *entities.Translation) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter entities.TranslationFilter, pagination utils.PaginationParams) ([]*entities.Translation, int64, error)
	ListByLocale(ctx context.Context, locale string) ([]*entities.Translation, error)
}

// CmsPageRepository defines CMS page data operations
type CmsPageRepository interface {
	Create(ctx context.Context, page *entities.CmsPage) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.CmsPage, error)
	Update(ctx context.Context, page *entities.CmsPage) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.CmsPage, int64, error)
	SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
}
