package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/logger"
)

func fastRetry(maxRetries int) RetryConfig {
	return RetryConfig{
		MaxRetries:    maxRetries,
		RetryInterval: time.Millisecond,
		MaxInterval:   2 * time.Millisecond,
	}
}

func TestRetryOnTransientError(t *testing.T) {
	transient := &pgconn.PgError{Code: "40001", Message: "could not serialize access"}

	t.Run("retries transient errors until success", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(3), func() error {
			calls++
			if calls < 3 {
				return transient
			}
			return nil
		}, logger.NewNoopLogger())

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on permanent error", func(t *testing.T) {
		permanent := errors.New("syntax error")
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(5), func() error {
			calls++
			return permanent
		}, logger.NewNoopLogger())

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(2), func() error {
			calls++
			return transient
		}, logger.NewNoopLogger())

		assert.ErrorIs(t, err, transient)
		assert.Equal(t, 2, calls)
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		cfg := fastRetry(5)
		cfg.RetryInterval = time.Second
		cfg.MaxInterval = time.Second
		err := RetryOnTransientError(ctx, cfg, func() error { return transient }, logger.NewNoopLogger())

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second}

	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 400*time.Millisecond, calculateBackoffWithJitter(2, cfg))
	assert.Equal(t, time.Second, calculateBackoffWithJitter(6, cfg))

	cfg.JitterFactor = 0.5
	for attempt := range 4 {
		backoff := calculateBackoffWithJitter(attempt, cfg)
		base := min(cfg.RetryInterval*(1<<uint(attempt)), cfg.MaxInterval)
		assert.GreaterOrEqual(t, backoff, base)
		assert.LessOrEqual(t, backoff, base+base/2)
	}
}
