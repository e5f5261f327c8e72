package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryConfig configures retries of transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// wait returns the backoff before attempt+1, with ±20% jitter.
func (c RetryConfig) wait(attempt int) time.Duration {
	w := float64(c.InitialWait) * math.Pow(c.Multiplier, float64(attempt))
	w = min(w, float64(c.MaxWait))
	w += w * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(max(w, 0))
}

type retryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps p with exponential backoff. A rate limit with a
// RetryAfter hint waits exactly that long.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &retryProvider{inner: p, cfg: cfg}
}

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var (
		lastErr     error
		invalidSeen bool
	)
	for attempt := range r.cfg.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !retryable(err, &invalidSeen) || attempt == r.cfg.MaxAttempts-1 {
			break
		}

		wait := r.cfg.wait(attempt)
		var rl *ErrRateLimit
		if errors.As(err, &rl) && rl.RetryAfter > 0 {
			wait = rl.RetryAfter
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil, lastErr
}

func (r *retryProvider) ModelID() string {
	return r.inner.ModelID()
}
