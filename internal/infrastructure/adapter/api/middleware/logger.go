package middleware

import (
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Logger writes one access log line per request. Client errors log at warn and server
// errors at error, so a 409 race between two admins is visible without debug logging.
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := map[string]any{
			"method":     c.Request.Method,
			"path":       path,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"bytes":      c.Writer.Size(),
			"ip":         c.ClientIP(),
			"request_id": RequestID(c),
		}
		if route := c.FullPath(); route != "" {
			fields["route"] = route
		}
		if principal, ok := CurrentPrincipal(c); ok {
			fields["user_id"] = principal.UserID
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("Request failed", fields)
		case status >= http.StatusBadRequest:
			logger.Warn("Request rejected", fields)
		default:
			logger.Info("Request served", fields)
		}
	}
}
