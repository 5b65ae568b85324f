package linkoracle

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Throttle modes accepted by NewThrottle.
const (
	ThrottleInterval = "interval"
	ThrottleLimiter  = "limiter"
	ThrottleNone     = "none"
)

//go:generate mockgen -destination=../../testutils/mocks/linkoracle/mock_throttle.go -package=linkoracle github.com/jonesrussell/wikihop/internal/linkoracle Throttle

// Throttle suspends the caller before a fetch so the search stays within a
// requests-per-minute budget.
type Throttle interface {
	Wait(ctx context.Context, rateLimit int) error
}

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Interval returns the pause that spreads rateLimit requests over a minute.
func Interval(rateLimit int) time.Duration {
	return time.Minute / time.Duration(rateLimit)
}

// NewThrottle returns the throttle for mode. An empty mode selects the
// fixed interval throttle.
func NewThrottle(mode string) (Throttle, error) {
	switch mode {
	case "", ThrottleInterval:
		return NewIntervalThrottle(nil), nil
	case ThrottleLimiter:
		return NewLimiterThrottle(), nil
	case ThrottleNone:
		return NoopThrottle{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownThrottleMode, mode)
	}
}

// IntervalThrottle sleeps for Interval(rateLimit) on every call, no matter
// how long ago the previous fetch happened.
type IntervalThrottle struct {
	sleep Sleeper
}

// NewIntervalThrottle creates an IntervalThrottle. A nil sleeper uses SleepContext.
func NewIntervalThrottle(sleep Sleeper) *IntervalThrottle {
	if sleep == nil {
		sleep = SleepContext
	}
	return &IntervalThrottle{sleep: sleep}
}

// Wait sleeps for the interval derived from rateLimit.
func (t *IntervalThrottle) Wait(ctx context.Context, rateLimit int) error {
	if rateLimit <= 0 {
		return ErrInvalidRateLimit
	}
	return t.sleep(ctx, Interval(rateLimit))
}

// SleepContext waits for d on a timer and returns early with ctx.Err() when
// ctx is done first.
func SleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// LimiterThrottle spaces fetches at least Interval(rateLimit) apart using a
// token bucket of size one. Unlike IntervalThrottle the first fetch is not
// delayed, and time spent parsing counts towards the next slot.
type LimiterThrottle struct {
	limiter   *rate.Limiter
	rateLimit int
}

// NewLimiterThrottle creates a LimiterThrottle.
func NewLimiterThrottle() *LimiterThrottle {
	return &LimiterThrottle{}
}

// Wait blocks until the limiter grants the next slot.
func (t *LimiterThrottle) Wait(ctx context.Context, rateLimit int) error {
	if rateLimit <= 0 {
		return ErrInvalidRateLimit
	}

	limit := rate.Every(Interval(rateLimit))
	switch {
	case t.limiter == nil:
		t.limiter = rate.NewLimiter(limit, 1)
	case t.rateLimit != rateLimit:
		t.limiter.SetLimit(limit)
	}
	t.rateLimit = rateLimit

	return t.limiter.Wait(ctx)
}

// NoopThrottle never waits.
type NoopThrottle struct{}

// Wait returns immediately.
func (NoopThrottle) Wait(_ context.Context, rateLimit int) error {
	if rateLimit <= 0 {
		return ErrInvalidRateLimit
	}
	return nil
}
