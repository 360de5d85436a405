package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/config"
)

const keyPrefix = "arena:ratelimit:"

// hitScript counts one hit and gives the window a TTL when the counter has none, which also
// repairs a counter left without an expiry. EVAL keeps this working on servers older than
// Redis 7, where EXPIRE NX is not available.
var hitScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 or redis.call('PTTL', KEYS[1]) < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return {count, redis.call('PTTL', KEYS[1])}
`)

// Decision is the outcome of one rate limit check
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// RedisRateLimiter is a fixed-window counter per key. A caller that exceeds the limit is
// blocked for BlockDuration. Redis failures let the request through.
type RedisRateLimiter struct {
	client        redis.Cmdable
	limit         int
	window        time.Duration
	blockDuration time.Duration
	logger        coreport.Logger
}

// NewRedisClient connects to redis and verifies the connection
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// NewRedisRateLimiter creates a limiter from the rate limit settings
func NewRedisRateLimiter(client redis.Cmdable, cfg config.RateLimitConfig, logger coreport.Logger) *RedisRateLimiter {
	return &RedisRateLimiter{
		client:        client,
		limit:         cfg.Requests,
		window:        cfg.Window,
		blockDuration: cfg.BlockDuration,
		logger:        logger,
	}
}

// Allow counts one hit for key and decides whether it may proceed
func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	counterKey := keyPrefix + key
	blockKey := counterKey + ":blocked"

	blockedFor, err := l.client.TTL(ctx, blockKey).Result()
	if err != nil {
		return l.failOpen(key, err)
	}
	if blockedFor > 0 {
		return Decision{Allowed: false, Limit: l.limit, RetryAfter: blockedFor}, nil
	}

	hit, err := hitScript.Run(ctx, l.client, []string{counterKey}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return l.failOpen(key, err)
	}
	if len(hit) != 2 {
		return l.failOpen(key, fmt.Errorf("unexpected rate limit reply: %v", hit))
	}

	count := int(hit[0])
	if count <= l.limit {
		return Decision{Allowed: true, Limit: l.limit, Remaining: l.limit - count}, nil
	}

	retryAfter := time.Duration(hit[1]) * time.Millisecond
	if l.blockDuration > 0 {
		if err := l.client.Set(ctx, blockKey, 1, l.blockDuration).Err(); err != nil {
			l.logger.Warn("Failed to set rate limit block", map[string]any{
				"key":   key,
				"error": err.Error(),
			})
		} else {
			retryAfter = l.blockDuration
		}
	}

	l.logger.Warn("Rate limit exceeded", map[string]any{
		"key":         key,
		"count":       count,
		"limit":       l.limit,
		"retry_after": retryAfter.String(),
	})
	return Decision{Allowed: false, Limit: l.limit, RetryAfter: retryAfter}, nil
}

func (l *RedisRateLimiter) failOpen(key string, err error) (Decision, error) {
	l.logger.Error("Rate limiter unavailable, allowing request", map[string]any{
		"key":   key,
		"error": err.Error(),
	})
	return Decision{Allowed: true, Limit: l.limit, Remaining: l.limit}, err
}
