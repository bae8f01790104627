package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/pkg/utils"
)

// CouponRepository defines coupon data operations
type CouponRepository interface {
	Create(ctx context.Context, coupon *entities.Coupon) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Coupon, error)
	GetByCode(ctx context.Context, code string) (*entities.Coupon, error)
	Update(ctx context.Context, coupon *entities.Coupon) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.Coupon, int64, error)
	ListUsages(ctx context.Context, couponID uuid.UUID, pagination utils.PaginationParams) ([]*entities.CouponUsage, int64, error)
	CountUsagesByUser(ctx context.Context, couponID, userID uuid.UUID) (int64, error)
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

// DealRepository defines deal data operations
type DealRepository interface {
	Create(ctx context.Context, deal *entities.Deal) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Deal, error)
	Update(ctx context.Context, deal *entities.Deal) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter entities.DealFilter, pagination utils.PaginationParams) ([]*entities.Deal, int64, error)
	// ListLiveForProduct returns live deals ordered by priority DESC, created_at ASC
	ListLiveForProduct(ctx context.Context, productID uuid.UUID, now time.Time) ([]*entities.Deal, error)
	DeactivateEnded(ctx context.Context, now time.Time) (int64, error)
}
