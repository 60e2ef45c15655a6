// Package resilience provides retry with exponential backoff and a circuit
// breaker for calls to the payment gateway and the extraction service.
package resilience

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"

	"recursos_api/internal/domain/apperr"

	"github.com/sony/gobreaker"
)

// Config holds resilience parameters.
type Config struct {
	MaxRetries     int
	InitialBackoff time.Duration
}

// RetryWithBackoff executes fn with exponential backoff + jitter.
// It respects context cancellation.
func RetryWithBackoff(ctx context.Context, cfg Config, fn func() error) error {
	return RetryIf(ctx, cfg, func(error) bool { return true }, fn)
}

// RetryIf is RetryWithBackoff that stops at the first error shouldRetry rejects.
func RetryIf(ctx context.Context, cfg Config, shouldRetry func(error) bool, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil || !shouldRetry(lastErr) {
			return lastErr
		}

		if attempt < cfg.MaxRetries {
			backoff := time.Duration(math.Pow(2, float64(attempt))) * cfg.InitialBackoff
			wait := backoff
			if half := int64(backoff / 2); half > 0 {
				wait += time.Duration(rand.Int63n(half))
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
	}
	return lastErr
}

// NewCircuitBreaker creates a circuit breaker with sensible defaults.
func NewCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,                // half-open: allow 3 requests
		Interval:    30 * time.Second, // closed: reset counters every 30s
		Timeout:     10 * time.Second, // open -> half-open after 10s
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
	})
}

// Guard runs calls to one external service through a circuit breaker and,
// when asked to, retries transient failures.
type Guard struct {
	service string
	cfg     Config
	cb      *gobreaker.CircuitBreaker
}

func NewGuard(service string, cfg Config) *Guard {
	return &Guard{service: service, cfg: cfg, cb: NewCircuitBreaker(service)}
}

// Do calls fn through the breaker. With retry=false fn runs at most once, which
// is what non-idempotent calls (charge creation) need.
func (g *Guard) Do(ctx context.Context, retry bool, fn func(ctx context.Context) error) error {
	call := func() error {
		_, err := g.cb.Execute(func() (interface{}, error) {
			return nil, fn(ctx)
		})
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return &apperr.ExternalServiceError{Service: g.service, Err: err}
		}
		return err
	}
	if !retry {
		return call()
	}
	return RetryIf(ctx, g.cfg, apperr.IsRetryable, call)
}
