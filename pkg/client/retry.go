package client

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for retry operations.
var (
	retriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parcl_retries_total",
		Help: "Total number of retries after a 429 response",
	})

	retryBackoffSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "parcl_retry_backoff_seconds",
		Help:    "Backoff duration before each retry",
		Buckets: []float64{0.5, 1, 2, 4, 8, 16, 32, 64},
	})

	retryExhaustedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parcl_retry_exhausted_total",
		Help: "Total number of requests that stayed rate limited after every retry",
	})
)

// RetryPolicy controls retries of HTTP 429 responses. No other failure is
// retried.
type RetryPolicy struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int

	// InitialBackoff is the wait before the first retry. Each further retry
	// doubles it.
	InitialBackoff time.Duration
}

// DefaultRetryPolicy returns 3 retries starting at one second.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:     3,
		InitialBackoff: 1 * time.Second,
	}
}

// Backoff returns the wait before retry attempt k (0-indexed):
// InitialBackoff * 2^k, saturating instead of overflowing.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	if attempt < 0 || p.InitialBackoff <= 0 {
		return 0
	}
	if attempt >= 62 || p.InitialBackoff > time.Duration(math.MaxInt64>>attempt) {
		return time.Duration(math.MaxInt64)
	}
	return p.InitialBackoff << attempt
}

func (p RetryPolicy) validate() error {
	if p.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", p.MaxRetries)
	}
	if p.InitialBackoff < 0 {
		return fmt.Errorf("initial_backoff must be >= 0 (got %s)", p.InitialBackoff)
	}
	return nil
}

// sleepFunc waits for d or until ctx is done.
type sleepFunc func(ctx context.Context, d time.Duration) error

// sleepContext is the default sleepFunc.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrContextCancelled, ctx.Err())
	case <-timer.C:
		return nil
	}
}
