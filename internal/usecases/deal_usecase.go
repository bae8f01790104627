package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/domain/repositories"
	"shop-admin.backend/pkg/utils"
)

// ActiveDeal is the winning deal of a product and the price it yields
type ActiveDeal struct {
	Deal      *entities.Deal  `json:"deal"`
	Price     decimal.Decimal `json:"price"`
	DealPrice decimal.Decimal `json:"dealPrice"`
}

// DealUsecase manages time-boxed product deals
type DealUsecase struct {
	dealRepo    repositories.DealRepository
	productRepo repositories.ProductRepository
	uow         repositories.UnitOfWork
	audit       *AuditService
	now         func() time.Time
}

// NewDealUsecase creates a new deal usecase
func NewDealUsecase(dealRepo repositories.DealRepository, productRepo repositories.ProductRepository, uow repositories.UnitOfWork, audit *AuditService) *DealUsecase {
	return &DealUsecase{dealRepo: dealRepo, productRepo: productRepo, uow: uow, audit: audit, now: time.Now}
}

// ListDeals lists deals; ActiveOnly narrows to deals live right now
func (u *DealUsecase) ListDeals(ctx context.Context, filter entities.DealFilter, pagination utils.PaginationParams) ([]*entities.Deal, int64, error) {
	if filter.ActiveOnly && filter.At.IsZero() {
		filter.At = u.now()
	}
	return u.dealRepo.List(ctx, filter, pagination)
}

func (u *DealUsecase) GetDeal(ctx context.Context, id uuid.UUID) (*entities.Deal, error) {
	return u.dealRepo.GetByID(ctx, id)
}

func (u *DealUsecase) CreateDeal(ctx context.Context, input *entities.DealInput) (*entities.Deal, error) {
	deal := &entities.Deal{IsActive: boolOr(input.IsActive, true)}
	if err := u.applyInput(ctx, deal, input); err != nil {
		return nil, err
	}
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.dealRepo.Create(ctx, deal); err != nil {
			return err
		}
		return u.audit.Record(ctx, "deals", entities.AuditActionCreated, "deal", deal.ID.String(), nil, deal)
	})
	if err != nil {
		return nil, err
	}
	return deal, nil
}

func (u *DealUsecase) UpdateDeal(ctx context.Context, id uuid.UUID, input *entities.DealInput) (*entities.Deal, error) {
	deal, err := u.dealRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := cloneOf(deal)
	if err := u.applyInput(ctx, deal, input); err != nil {
		return nil, err
	}
	deal.IsActive = boolOr(input.IsActive, deal.IsActive)
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.dealRepo.Update(ctx, deal); err != nil {
			return err
		}
		return u.audit.Record(ctx, "deals", entities.AuditActionUpdated, "deal", id.String(), before, deal)
	})
	if err != nil {
		return nil, err
	}
	return deal, nil
}

func (u *DealUsecase) DeleteDeal(ctx context.Context, id uuid.UUID) error {
	deal, err := u.dealRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.dealRepo.Delete(ctx, id); err != nil {
			return err
		}
		return u.audit.Record(ctx, "deals", entities.AuditActionDeleted, "deal", id.String(), deal, nil)
	})
}

// ActiveForProduct returns the highest priority live deal of a product
func (u *DealUsecase) ActiveForProduct(ctx context.Context, productID uuid.UUID) (*ActiveDeal, error) {
	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	deals, err := u.dealRepo.ListLiveForProduct(ctx, productID, u.now())
	if err != nil {
		return nil, err
	}
	if len(deals) == 0 {
		return nil, domainerrors.NotFound("product has no active deal")
	}
	return &ActiveDeal{Deal: deals[0], Price: product.Price, DealPrice: DealPrice(deals[0], product.Price)}, nil
}

// DeactivateEnded switches off deals whose window has closed, auditing the sweep like coupons
func (u *DealUsecase) DeactivateEnded(ctx context.Context) (int64, error) {
	now := u.now()
	var n int64
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		if n, err = u.dealRepo.DeactivateEnded(ctx, now); err != nil || n == 0 {
			return err
		}
		return u.audit.Record(ctx, "deals", entities.AuditActionExpired, "deal", "", nil, expirySweep{Deactivated: n, Cutoff: now})
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// DealPrice is max(0, price - discount) rounded to cents
func DealPrice(d *entities.Deal, price decimal.Decimal) decimal.Decimal {
	discount := d.DiscountValue
	if d.DiscountType == entities.DealDiscountPercentage {
		discount = price.Mul(d.DiscountValue).Div(hundred)
	}
	return decimal.Max(decimal.Zero, price.Sub(discount)).Round(2)
}

func (u *DealUsecase) applyInput(ctx context.Context, d *entities.Deal, input *entities.DealInput) error {
	fields := map[string]string{}
	if strings.TrimSpace(input.Title) == "" {
		fields["title"] = "is required"
	}
	switch input.DiscountType {
	case entities.DealDiscountPercentage:
		if !input.DiscountValue.IsPositive() || input.DiscountValue.GreaterThan(hundred) {
			fields["discountValue"] = "must be greater than 0 and at most 100"
		}
	case entities.DealDiscountFixed:
		if !input.DiscountValue.IsPositive() {
			fields["discountValue"] = "must be greater than 0"
		}
	default:
		fields["discountType"] = "must be percentage or fixed"
	}
	if !input.EndsAt.After(input.StartsAt) {
		fields["endsAt"] = "must be after startsAt"
	}
	if len(fields) > 0 {
		return domainerrors.ValidationFailed(fields)
	}
	if _, err := u.productRepo.GetByID(ctx, input.ProductID); err != nil {
		return missingRef(err, "product")
	}

	d.ProductID = input.ProductID
	d.Title = strings.TrimSpace(input.Title)
	d.DiscountType = input.DiscountType
	d.DiscountValue = input.DiscountValue
	d.StartsAt = input.StartsAt
	d.EndsAt = input.EndsAt
	d.Priority = input.Priority
	return nil
}
