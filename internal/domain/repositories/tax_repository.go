package repositories

import (
	"context"

	"github.com/google/uuid"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/pkg/utils"
)

// TaxRateRepository defines tax rate data operations
type TaxRateRepository interface {
	Create(ctx context.Context, rate *entities.TaxRate) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.TaxRate, error)
	Update(ctx context.Context, rate *entities.TaxRate) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.TaxRate, int64, error)
	CountRules(ctx context.Context, id uuid.UUID) (int64, error)
}

// TaxRuleRepository defines tax rule data operations
type TaxRuleRepository interface {
	Create(ctx context.Context, rule *entities.TaxRule) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.TaxRule, error)
	Update(ctx context.Context, rule *entities.TaxRule) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.TaxRule, int64, error)
	// ListActive returns active rules with their rate loaded
	ListActive(ctx context.Context) ([]*entities.TaxRule, error)
}
