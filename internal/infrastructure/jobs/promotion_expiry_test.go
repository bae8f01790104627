package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"shop-admin.backend/internal/domain/entities"
)

type couponExpirerStub struct {
	count int64
	err   error
	calls int
	actor entities.Actor
}

func (s *couponExpirerStub) DeactivateExpired(ctx context.Context) (int64, error) {
	s.calls++
	s.actor, _ = entities.ActorFromContext(ctx)
	return s.count, s.err
}

type dealExpirerStub struct {
	count int64
	err   error
	calls int
}

func (s *dealExpirerStub) DeactivateEnded(context.Context) (int64, error) {
	s.calls++
	return s.count, s.err
}

func TestExpirePromotions_RunsBoth(t *testing.T) {
	coupons := &couponExpirerStub{count: 2}
	deals := &dealExpirerStub{count: 1}
	job := NewPromotionExpiryJob(coupons, deals, time.Millisecond)

	job.expirePromotions(context.Background())
	require.Equal(t, 1, coupons.calls)
	require.Equal(t, 1, deals.calls)
	require.Equal(t, entities.ActorRoleSystem, coupons.actor.Role)
	require.Equal(t, "promotion-expiry", coupons.actor.UserAgent)
}

func TestExpirePromotions_CouponErrorStillExpiresDeals(t *testing.T) {
	coupons := &couponExpirerStub{err: errors.New("db down")}
	deals := &dealExpirerStub{}
	job := NewPromotionExpiryJob(coupons, deals, time.Millisecond)

	job.expirePromotions(context.Background())
	require.Equal(t, 1, deals.calls)
}

func TestNewPromotionExpiryJob_DefaultInterval(t *testing.T) {
	job := NewPromotionExpiryJob(&couponExpirerStub{}, &dealExpirerStub{}, 0)
	require.Equal(t, time.Minute, job.interval)
}

func TestStartStop_StopsByContext(t *testing.T) {
	job := NewPromotionExpiryJob(&couponExpirerStub{}, &dealExpirerStub{}, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("job did not stop on context cancel")
	}
}

func TestStartStop_StopsByStopChannel(t *testing.T) {
	coupons := &couponExpirerStub{}
	job := NewPromotionExpiryJob(coupons, &dealExpirerStub{}, time.Millisecond)

	done := make(chan struct{})
	go func() {
		job.Start(context.Background())
		close(done)
	}()
	job.Stop()
	job.Stop()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("job did not stop on Stop()")
	}
}
