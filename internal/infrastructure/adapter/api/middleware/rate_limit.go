package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/cache"
	"github.com/gin-gonic/gin"
)

// RateLimiter decides whether a keyed caller may proceed
type RateLimiter interface {
	Allow(ctx context.Context, key string) (cache.Decision, error)
}

// RateLimitCounter counts requests turned away by the limiter
type RateLimitCounter interface {
	RateLimited()
}

// RateLimit throttles a route group per authenticated user. Limiter errors let the request
// through; the limiter has already logged them.
func RateLimit(limiter RateLimiter, scope string, counter RateLimitCounter, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()
		if principal, ok := CurrentPrincipal(c); ok {
			key = scope + ":" + principal.UserID
		}

		decision, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			counter.RateLimited()
			logger.Warn("Rate limit exceeded", map[string]any{
				"key":         key,
				"retry_after": retryAfter,
				"request_id":  RequestID(c),
			})
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Code:    domainerr.CodeRateLimited,
				Message: domainerr.ErrRateLimited.Error(),
			})
			return
		}
		c.Next()
	}
}
