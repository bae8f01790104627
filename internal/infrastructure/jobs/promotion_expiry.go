package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/pkg/logger"
	"shop-admin.backend/pkg/metrics"
)

type couponExpirer interface {
	DeactivateExpired(ctx context.Context) (int64, error)
}

type dealExpirer interface {
	DeactivateEnded(ctx context.Context) (int64, error)
}

// PromotionExpiryJob switches off coupons past their expiry and deals past their end
type PromotionExpiryJob struct {
	coupons  couponExpirer
	deals    dealExpirer
	interval time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

func NewPromotionExpiryJob(coupons couponExpirer, deals dealExpirer, interval time.Duration) *PromotionExpiryJob {
	if interval <= 0 {
		interval = time.Minute
	}
	return &PromotionExpiryJob{
		coupons:  coupons,
		deals:    deals,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start blocks until ctx is cancelled or Stop is called
func (j *PromotionExpiryJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting promotion expiry job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Promotion expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Promotion expiry job stopped")
			return
		case <-ticker.C:
			j.expirePromotions(ctx)
		}
	}
}

func (j *PromotionExpiryJob) Stop() {
	j.stopOnce.Do(func() { close(j.stop) })
}

func (j *PromotionExpiryJob) expirePromotions(ctx context.Context) {
	ctx = entities.WithActor(ctx, entities.SystemActor("promotion-expiry"))

	coupons, err := j.coupons.DeactivateExpired(ctx)
	if err != nil {
		logger.Error(ctx, "Failed to deactivate expired coupons", zap.Error(err))
	} else if coupons > 0 {
		metrics.PromotionsExpiredTotal.WithLabelValues("coupon").Add(float64(coupons))
		logger.Info(ctx, "Deactivated expired coupons", zap.Int64("count", coupons))
	}

	deals, err := j.deals.DeactivateEnded(ctx)
	if err != nil {
		logger.Error(ctx, "Failed to deactivate ended deals", zap.Error(err))
	} else if deals > 0 {
		metrics.PromotionsExpiredTotal.WithLabelValues("deal").Add(float64(deals))
		logger.Info(ctx, "Deactivated ended deals", zap.Int64("count", deals))
	}
}
