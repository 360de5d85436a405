package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/config"
)

func TestRedisRateLimiter_FailsOpen(t *testing.T) {
	// Nothing listens on port 1, so every command fails fast
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	limiter := NewRedisRateLimiter(client, config.RateLimitConfig{
		Requests:      5,
		Window:        time.Minute,
		BlockDuration: 5 * time.Minute,
	}, logger.NewNoopLogger())

	decision, err := limiter.Allow(context.Background(), "user-1:POST:/api/topup")

	assert.Error(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, 5, decision.Remaining)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	_, err := NewRedisClient(context.Background(), config.RedisConfig{Addr: "127.0.0.1:1"})

	assert.ErrorContains(t, err, "127.0.0.1:1")
}

func newMiniredisLimiter(t *testing.T, requests int, block time.Duration) (*RedisRateLimiter, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisRateLimiter(client, config.RateLimitConfig{
		Requests:      requests,
		Window:        time.Minute,
		BlockDuration: block,
	}, logger.NewNoopLogger()), server
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	ctx := context.Background()

	t.Run("Counts hits within the window", func(t *testing.T) {
		limiter, server := newMiniredisLimiter(t, 2, 0)

		first, err := limiter.Allow(ctx, "submit:user-1")
		require.NoError(t, err)
		second, err := limiter.Allow(ctx, "submit:user-1")
		require.NoError(t, err)
		third, err := limiter.Allow(ctx, "submit:user-1")
		require.NoError(t, err)

		assert.True(t, first.Allowed)
		assert.Equal(t, 1, first.Remaining)
		assert.True(t, second.Allowed)
		assert.Equal(t, 0, second.Remaining)
		assert.False(t, third.Allowed)
		assert.Equal(t, time.Minute, third.RetryAfter)
		assert.Equal(t, time.Minute, server.TTL(keyPrefix+"submit:user-1"))
	})

	t.Run("Window expiry resets the counter", func(t *testing.T) {
		limiter, server := newMiniredisLimiter(t, 1, 0)

		_, err := limiter.Allow(ctx, "transfer:user-1")
		require.NoError(t, err)
		server.FastForward(time.Minute + time.Second)

		decision, err := limiter.Allow(ctx, "transfer:user-1")
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
	})

	t.Run("Counter without expiry gets one", func(t *testing.T) {
		limiter, server := newMiniredisLimiter(t, 5, 0)
		require.NoError(t, server.Set(keyPrefix+"submit:ip-1", "3"))

		decision, err := limiter.Allow(ctx, "submit:ip-1")

		require.NoError(t, err)
		assert.Equal(t, 1, decision.Remaining)
		assert.Equal(t, time.Minute, server.TTL(keyPrefix+"submit:ip-1"))
	})

	t.Run("Exceeding the limit blocks the key", func(t *testing.T) {
		limiter, server := newMiniredisLimiter(t, 1, 5*time.Minute)

		_, err := limiter.Allow(ctx, "submit:user-2")
		require.NoError(t, err)
		denied, err := limiter.Allow(ctx, "submit:user-2")
		require.NoError(t, err)

		assert.False(t, denied.Allowed)
		assert.Equal(t, 5*time.Minute, denied.RetryAfter)
		assert.True(t, server.Exists(keyPrefix+"submit:user-2:blocked"))

		server.FastForward(2 * time.Minute)
		stillBlocked, err := limiter.Allow(ctx, "submit:user-2")
		require.NoError(t, err)
		assert.False(t, stillBlocked.Allowed)
		assert.Equal(t, 3*time.Minute, stillBlocked.RetryAfter)
	})
}
