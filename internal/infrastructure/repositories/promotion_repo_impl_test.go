package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/infrastructure/models"
	"shop-admin.backend/pkg/utils"
)

func TestCouponRepository_CRUDAndScope(t *testing.T) {
	db := newTestDB(t)
	createPromotionTables(t, db)
	ctx := context.Background()
	repo := NewCouponRepository(db)
	categoryID := uuid.New()

	c := &entities.Coupon{
		Code:              " summer10 ",
		Type:              entities.CouponTypePercentage,
		Value:             decimal.NewFromInt(10),
		MinOrderAmount:    decimal.NewFromInt(50),
		MaxDiscountAmount: decimal.NewNullDecimal(decimal.NewFromInt(20)),
		UsageLimit:        null.IntFrom(100),
		IsActive:          true,
		CategoryIDs:       []uuid.UUID{categoryID},
	}
	require.NoError(t, repo.Create(ctx, c))
	require.Equal(t, "SUMMER10", c.Code)

	got, err := repo.GetByCode(ctx, "Summer10")
	require.NoError(t, err)
	require.Equal(t, c.ID, got.ID)
	require.Equal(t, []uuid.UUID{categoryID}, got.CategoryIDs)
	require.Empty(t, got.ProductIDs)
	require.Equal(t, 100, got.UsageLimit.Int)
	require.False(t, got.UsageLimitPerUser.Valid)
	require.True(t, got.MaxDiscountAmount.Valid)

	productID := uuid.New()
	got.ProductIDs = []uuid.UUID{productID}
	got.UsageLimit = null.Int{}
	require.NoError(t, repo.Update(ctx, got))
	reloaded, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{productID}, reloaded.ProductIDs)
	require.False(t, reloaded.UsageLimit.Valid)

	list, total, err := repo.List(ctx, "summer", utils.GetPaginationParams(1, 10))
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, c.ID))
	_, err = repo.GetByCode(ctx, "SUMMER10")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCouponRepository_UsagesAndExpiry(t *testing.T) {
	db := newTestDB(t)
	createPromotionTables(t, db)
	ctx := context.Background()
	repo := NewCouponRepository(db)
	now := time.Now().UTC()

	expired := &entities.Coupon{Code: "OLD", Type: entities.CouponTypeFixed, Value: decimal.NewFromInt(5),
		IsActive: true, ExpiresAt: null.TimeFrom(now.Add(-time.Hour))}
	live := &entities.Coupon{Code: "NEW", Type: entities.CouponTypeFixed, Value: decimal.NewFromInt(5),
		IsActive: true, ExpiresAt: null.TimeFrom(now.Add(time.Hour))}
	open := &entities.Coupon{Code: "OPEN", Type: entities.CouponTypeFreeShipping, IsActive: true}
	for _, c := range []*entities.Coupon{expired, live, open} {
		require.NoError(t, repo.Create(ctx, c))
	}

	n, err := repo.DeactivateExpired(ctx, now)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
	got, err := repo.GetByID(ctx, expired.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)

	userID := uuid.New()
	for i := 0; i < 2; i++ {
		require.NoError(t, db.Create(&models.CouponUsage{
			ID:             uuid.New(), CouponID: live.ID, UserID: userID, OrderID: uuid.New(),
			DiscountAmount: decimal.NewFromInt(5), CreatedAt: now,
		}).Error)
	}
	count, err := repo.CountUsagesByUser(ctx, live.ID, userID)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	usages, total, err := repo.ListUsages(ctx, live.ID, utils.GetPaginationParams(1, 1))
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, usages, 1)
}

func TestDealRepository(t *testing.T) {
	db := newTestDB(t)
	createPromotionTables(t, db)
	ctx := context.Background()
	repo := NewDealRepository(db)
	productID := uuid.New()
	now := time.Now().UTC().Truncate(time.Second)

	low := &entities.Deal{ProductID: productID, Title: "Low", DiscountType: entities.DealDiscountPercentage,
		DiscountValue: decimal.NewFromInt(5), StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour), IsActive: true, Priority: 1}
	high := &entities.Deal{ProductID: productID, Title: "High", DiscountType: entities.DealDiscountFixed,
		DiscountValue: decimal.NewFromInt(3), StartsAt: now.Add(-time.Hour), EndsAt: now.Add(2 * time.Hour), IsActive: true, Priority: 5}
	ended := &entities.Deal{ProductID: productID, Title: "Ended", DiscountType: entities.DealDiscountFixed,
		DiscountValue: decimal.NewFromInt(1), StartsAt: now.Add(-3 * time.Hour), EndsAt: now.Add(-time.Hour), IsActive: true}
	future := &entities.Deal{ProductID: productID, Title: "Future", DiscountType: entities.DealDiscountFixed,
		DiscountValue: decimal.NewFromInt(1), StartsAt: now.Add(time.Hour), EndsAt: now.Add(3 * time.Hour), IsActive: true, Priority: 9}
	for _, d := range []*entities.Deal{low, high, ended, future} {
		require.NoError(t, repo.Create(ctx, d))
	}

	liveDeals, err := repo.ListLiveForProduct(ctx, productID, now)
	require.NoError(t, err)
	require.Len(t, liveDeals, 2)
	require.Equal(t, high.ID, liveDeals[0].ID)
	require.Equal(t, low.ID, liveDeals[1].ID)

	_, total, err := repo.List(ctx, entities.DealFilter{ProductID: &productID, ActiveOnly: true, At: now}, utils.GetPaginationParams(1, 10))
	require.NoError(t, err)
	require.Equal(t, int64(2), total)

	n, err := repo.DeactivateEnded(ctx, now)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	low.IsActive = false
	require.NoError(t, repo.Update(ctx, low))
	liveDeals, err = repo.ListLiveForProduct(ctx, productID, now)
	require.NoError(t, err)
	require.Len(t, liveDeals, 1)

	require.NoError(t, repo.Delete(ctx, high.ID))
	_, err = repo.GetByID(ctx, high.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTaxRepositories(t *testing.T) {
	db := newTestDB(t)
	createPromotionTables(t, db)
	ctx := context.Background()
	rates := NewTaxRateRepository(db)
	rules := NewTaxRuleRepository(db)

	vat := &entities.TaxRate{Name: "VAT", Rate: decimal.RequireFromString("0.2000"), IsActive: true}
	require.NoError(t, rates.Create(ctx, vat))

	rule := &entities.TaxRule{Name: "UK", TaxRateID: vat.ID, Country: "gb", Priority: 10, IsActive: true}
	require.NoError(t, rules.Create(ctx, rule))
	require.Equal(t, "GB", rule.Country)
	inactive := &entities.TaxRule{Name: "Old", TaxRateID: vat.ID, Country: "*"}
	require.NoError(t, rules.Create(ctx, inactive))

	active, err := rules.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.NotNil(t, active[0].Rate)
	require.True(t, active[0].Rate.Rate.Equal(decimal.RequireFromString("0.2")))

	got, err := rules.GetByID(ctx, rule.ID)
	require.NoError(t, err)
	got.State = "ENG"
	require.NoError(t, rules.Update(ctx, got))

	_, total, err := rules.List(ctx, utils.GetPaginationParams(1, 10))
	require.NoError(t, err)
	require.Equal(t, int64(2), total)

	used, err := rates.CountRules(ctx, vat.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), used)

	vat.Name = "Standard VAT"
	require.NoError(t, rates.Update(ctx, vat))
	list, total, err := rates.List(ctx, utils.GetPaginationParams(1, 10))
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, "Standard VAT", list[0].Name)

	require.NoError(t, rules.Delete(ctx, inactive.ID))
	require.ErrorIs(t, rules.Delete(ctx, inactive.ID), domainerrors.ErrNotFound)
	require.NoError(t, rules.Delete(ctx, rule.ID))
	require.NoError(t, rates.Delete(ctx, vat.ID))
	_, err = rates.GetByID(ctx, vat.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
