package usecases

import (
	"context"
	"time"

	"go.uber.org/zap"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/domain/repositories"
	"shop-admin.backend/pkg/logger"
)

const (
	defaultDashboardDays = 30
	maxDashboardDays     = 366
	defaultTopProducts   = 10
	maxWidgetRows        = 100
)

// DashboardSettings reads the store settings the widgets depend on
type DashboardSettings interface {
	GetInt(ctx context.Context, group, key string) (int, error)
	GetBool(ctx context.Context, group, key string) (bool, error)
}

// DashboardUsecase serves the dashboard widgets
type DashboardUsecase struct {
	repo              repositories.DashboardRepository
	settings          DashboardSettings
	lowStockThreshold int
	now               func() time.Time
}

// NewDashboardUsecase creates a new dashboard usecase. lowStockThreshold is
// used when the general.low_stock_threshold setting cannot be read.
func NewDashboardUsecase(repo repositories.DashboardRepository, settings DashboardSettings, lowStockThreshold int) *DashboardUsecase {
	return &DashboardUsecase{repo: repo, settings: settings, lowStockThreshold: lowStockThreshold, now: time.Now}
}

// ResolveRange fills a missing bound: To defaults to now and From to 30 days before To
func (u *DashboardUsecase) ResolveRange(from, to *time.Time) (entities.DateRange, error) {
	r := entities.DateRange{To: u.now()}
	if to != nil {
		r.To = *to
	}
	r.From = r.To.AddDate(0, 0, -defaultDashboardDays)
	if from != nil {
		r.From = *from
	}
	if !r.From.Before(r.To) {
		return r, domainerrors.BadRequest("from must be before to")
	}
	if r.To.Sub(r.From) > maxDashboardDays*24*time.Hour {
		return r, domainerrors.BadRequest("date range must not exceed one year")
	}
	return r, nil
}

func (u *DashboardUsecase) Summary(ctx context.Context, r entities.DateRange) (*entities.DashboardSummary, error) {
	return u.repo.Summary(ctx, r)
}

func (u *DashboardUsecase) OrdersByStatus(ctx context.Context) ([]entities.StatusCount, error) {
	return u.repo.OrdersByStatus(ctx)
}

func (u *DashboardUsecase) TopProducts(ctx context.Context, r entities.DateRange, limit int) ([]entities.TopProduct, error) {
	return u.repo.TopProducts(ctx, r, clampLimit(limit, defaultTopProducts))
}

func (u *DashboardUsecase) SalesByDay(ctx context.Context, r entities.DateRange) ([]entities.DailySales, error) {
	return u.repo.SalesByDay(ctx, r)
}

// LowStock lists products at or below threshold. A nil threshold reads the
// store setting, and the widget stays empty while low stock alerts are off.
func (u *DashboardUsecase) LowStock(ctx context.Context, threshold *int, limit int) ([]entities.LowStockItem, error) {
	t := u.lowStockThreshold
	switch {
	case threshold != nil:
		if *threshold < 0 {
			return nil, domainerrors.BadRequest("threshold must not be negative")
		}
		t = *threshold
	case u.settings != nil:
		enabled, err := u.settings.GetBool(ctx, "notifications", "low_stock_alert_enabled")
		if err != nil {
			logger.Warn(ctx, "Low stock alert setting unavailable", zap.Error(err))
		} else if !enabled {
			return []entities.LowStockItem{}, nil
		}
		v, err := u.settings.GetInt(ctx, "general", "low_stock_threshold")
		if err != nil {
			logger.Warn(ctx, "Low stock threshold setting unavailable", zap.Error(err))
		} else {
			t = v
		}
	}
	return u.repo.LowStock(ctx, t, clampLimit(limit, maxWidgetRows))
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > maxWidgetRows {
		return maxWidgetRows
	}
	return limit
}
