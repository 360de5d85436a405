package middleware

import (
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const principalKey = "arena.principal"

// TokenVerifier turns a bearer token into the principal it was issued for
type TokenVerifier interface {
	Verify(token string) (entity.Principal, error)
}

// Authenticate rejects requests without a valid bearer token and stores the principal
func Authenticate(verifier TokenVerifier, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeUnauthorized,
				Message: "Missing bearer token",
			})
			return
		}

		principal, err := verifier.Verify(token)
		if err != nil {
			logger.Debug("Rejected bearer token", map[string]any{
				"error":      err.Error(),
				"path":       c.Request.URL.Path,
				"request_id": RequestID(c),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeUnauthorized,
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireAdmin lets only principals with the admin role through
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentPrincipal(c)
		if !ok || !principal.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.CodeForbidden,
				Message: "Admin access required",
			})
			return
		}
		c.Next()
	}
}

// ProvisionAccount makes sure the caller has a wallet before any handler touches it
func ProvisionAccount(wallets usecase.WalletUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeUnauthorized,
				Message: "Authentication required",
			})
			return
		}

		if _, err := wallets.EnsureAccount(c.Request.Context(), principal); err != nil {
			logger.Error("Failed to provision account", map[string]any{
				"user_id":    principal.UserID,
				"error":      err.Error(),
				"request_id": RequestID(c),
			})
			c.AbortWithStatusJSON(dto.HTTPStatus(err), dto.NewErrorResponse(err))
			return
		}
		c.Next()
	}
}

// CurrentPrincipal returns the authenticated caller
func CurrentPrincipal(c *gin.Context) (entity.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return entity.Principal{}, false
	}
	principal, ok := value.(entity.Principal)
	return principal, ok
}

// SetPrincipal stores the caller on the gin context
func SetPrincipal(c *gin.Context, p entity.Principal) {
	c.Set(principalKey, p)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
