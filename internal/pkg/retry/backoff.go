package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piresc/chadpay/internal/pkg/logger"
)

// Config holds retry configuration
type Config struct {
	MaxRetries int           // Attempts after the first one
	BaseDelay  time.Duration // Delay before the first retry
	MaxDelay   time.Duration // Upper bound for any single delay
	Multiplier float64       // Exponential backoff multiplier
	Jitter     bool          // Add up to 10% random delay

	// Retryable decides whether err is worth another attempt. Nil retries
	// every error.
	Retryable func(error) bool
}

// DefaultConfig returns the backoff used while dependencies come up
func DefaultConfig() Config {
	return Config{
		MaxRetries: 5,
		BaseDelay:  500 * time.Millisecond,
		MaxDelay:   10 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Do runs fn until it succeeds, returns a non-retryable error, runs out of
// attempts or ctx is done. op names the operation in logs.
func Do(ctx context.Context, cfg Config, op string, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				logger.InfoCtx(ctx, "Operation succeeded after retries",
					logger.String("operation", op),
					logger.Int("attempts", attempt+1))
			}
			return nil
		}
		lastErr = err

		if cfg.Retryable != nil && !cfg.Retryable(err) {
			return err
		}
		if attempt == cfg.MaxRetries {
			break
		}

		delay := cfg.delay(attempt)
		logger.WarnCtx(ctx, "Operation failed, retrying",
			logger.String("operation", op),
			logger.Err(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", op, cfg.MaxRetries+1, lastErr)
}

func (c Config) delay(attempt int) time.Duration {
	multiplier := c.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}
	delay := float64(c.BaseDelay) * math.Pow(multiplier, float64(attempt))
	if c.MaxDelay > 0 && delay > float64(c.MaxDelay) {
		delay = float64(c.MaxDelay)
	}
	if c.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}
	return time.Duration(delay)
}
