package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// respondError writes err in the standard error shape. Client errors are logged at debug,
// everything else at error with the domain's structured fields.
func respondError(c *gin.Context, logger coreport.Logger, message string, err error) {
	status := dto.HTTPStatus(err)

	fields := domainerr.LogFieldsOf(err)
	fields["path"] = c.Request.URL.Path
	fields["request_id"] = middleware.RequestID(c)
	if principal, ok := middleware.CurrentPrincipal(c); ok {
		fields["user_id"] = principal.UserID
	}

	if status >= http.StatusInternalServerError {
		logger.Error(message, fields)
	} else {
		logger.Debug(message, fields)
	}

	_ = c.Error(err)
	c.JSON(status, dto.NewErrorResponse(err))
}

// requirePrincipal returns the caller or answers 401
func requirePrincipal(c *gin.Context) (entity.Principal, bool) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeUnauthorized,
			Message: "Authentication required",
		})
		return entity.Principal{}, false
	}
	return principal, true
}

// queryInt reads an optional integer query parameter; zero means "use the default"
func queryInt(c *gin.Context, name string, verr *domainerr.ValidationError) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		verr.Add(name, "must be a non-negative integer")
		return 0
	}
	return n
}

// pagination reads page and limit from the query string
func pagination(c *gin.Context) (page, limit int, err error) {
	verr := domainerr.NewValidationError("query")
	page = queryInt(c, "page", verr)
	limit = queryInt(c, "limit", verr)
	return page, limit, verr.OrNil()
}

func invalidBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.InvalidRequest("Invalid request format: "+err.Error()))
}
