// Package retry provides bounded exponential backoff for outbound calls
package retry

import (
	"context"
	"time"

	perr "assistant/internal/platform/errors"
)

// Sleeper lets tests replace real sleeps with recorded ones
type Sleeper func(ctx context.Context, d time.Duration) error

// Options controls retry behavior
type Options struct {
	// Retries is the total attempt budget (default 3)
	Retries int
	// BaseDelay is the first backoff delay; doubles each retry (default 1s)
	BaseDelay time.Duration
	// IsRetryable decides eligibility; default perr.Retryable
	IsRetryable func(error) bool
	// Sleep is the delay primitive; default context-aware time.Sleep
	Sleep Sleeper
}

func (o *Options) defaults() {
	if o.Retries <= 0 {
		o.Retries = 3
	}
	if o.BaseDelay <= 0 {
		o.BaseDelay = time.Second
	}
	if o.IsRetryable == nil {
		o.IsRetryable = perr.Retryable
	}
	if o.Sleep == nil {
		o.Sleep = SleepCtx
	}
}

// SleepCtx sleeps for d or until ctx is done
func SleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Do runs fn up to opts.Retries times, doubling the delay between attempts.
// Non-retryable errors abort immediately. The delay sequence for the default
// budget is base, 2*base (no sleep after the final attempt).
func Do[T any](ctx context.Context, fn func() (T, error), opts Options) (T, error) {
	opts.defaults()

	var zero T
	var lastErr error
	delay := opts.BaseDelay
	for attempt := 1; attempt <= opts.Retries; attempt++ {
		out, err := fn()
		if err == nil {
			return out, nil
		}
		lastErr = err
		if !opts.IsRetryable(err) {
			return zero, err
		}
		if attempt == opts.Retries {
			break
		}
		if err := opts.Sleep(ctx, delay); err != nil {
			return zero, err
		}
		delay *= 2
	}
	return zero, lastErr
}
