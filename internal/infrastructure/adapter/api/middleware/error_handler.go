package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	domainerr "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler turns a panicking handler into a 5000 response. http.ErrAbortHandler is
// re-raised so net/http can drop the connection the way it normally does.
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.Error("Handler panicked", map[string]any{
				"panic":      rec,
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
				"route":      c.FullPath(),
				"request_id": RequestID(c),
				"stack":      string(debug.Stack()),
			})

			if c.Writer.Written() {
				// headers are gone, all we can do is stop the chain
				c.Abort()
				return
			}
			writeError(c, http.StatusInternalServerError, domainerr.ErrInternalServer, "Internal server error")
		}()

		c.Next()
	}
}

// NotFound answers unknown routes in the standard error shape
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		writeError(c, http.StatusNotFound, domainerr.ErrNotFound, "Route not found")
	}
}

func writeError(c *gin.Context, status int, kind error, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(kind),
		Message: message,
	})
}
