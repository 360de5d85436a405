package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/logger"
	musecase "github.com/amirhossein-jamali/arena-wallet/mocks/port/usecase"
)

var player = entity.Principal{UserID: "user-1", Name: "Nadia", Phone: "01700000001", Role: entity.RoleUser}

type stubVerifier map[string]entity.Principal

func (s stubVerifier) Verify(token string) (entity.Principal, error) {
	p, ok := s[token]
	if !ok {
		return entity.Principal{}, errors.New("token is malformed")
	}
	return p, nil
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware())
	return router
}

// whoami echoes the principal seen by the handler
func whoami(c *gin.Context) {
	p, ok := CurrentPrincipal(c)
	if !ok {
		c.String(http.StatusOK, "anonymous")
		return
	}
	c.String(http.StatusOK, p.UserID+"/"+string(p.Role))
}

func TestAuthenticate(t *testing.T) {
	verifier := stubVerifier{
		"good-user":  player,
		"good-admin": {UserID: "admin-1", Role: entity.RoleAdmin},
	}

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{name: "Missing header", wantCode: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic dXNlcjpwYXNz", wantCode: http.StatusUnauthorized},
		{name: "Empty token", header: "Bearer   ", wantCode: http.StatusUnauthorized},
		{name: "Unknown token", header: "Bearer forged", wantCode: http.StatusUnauthorized},
		{name: "Valid user token", header: "Bearer good-user", wantCode: http.StatusOK, wantBody: "user-1/user"},
		{name: "Scheme is case-insensitive", header: "bearer good-admin", wantCode: http.StatusOK, wantBody: "admin-1/admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newEngine()
			router.GET("/me", Authenticate(verifier, logger.NewNoopLogger()), whoami)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"code":4010`)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	verifier := stubVerifier{
		"user":  player,
		"admin": {UserID: "admin-1", Role: entity.RoleAdmin},
	}
	router := newEngine()
	router.GET("/admin", Authenticate(verifier, logger.NewNoopLogger()), RequireAdmin(), whoami)

	for token, wantCode := range map[string]int{"user": http.StatusForbidden, "admin": http.StatusOK} {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, wantCode, w.Code, token)
	}
}

func TestProvisionAccount(t *testing.T) {
	t.Run("Provisions the wallet before the handler runs", func(t *testing.T) {
		wallets := musecase.NewMockWalletUseCase(t)
		wallets.EXPECT().EnsureAccount(mock.Anything, player).Return(&entity.Account{UserID: player.UserID}, nil).Once()

		router := newEngine()
		router.GET("/me", Authenticate(stubVerifier{"t": player}, logger.NewNoopLogger()), ProvisionAccount(wallets, logger.NewNoopLogger()), whoami)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer t")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Database outage answers 503", func(t *testing.T) {
		wallets := musecase.NewMockWalletUseCase(t)
		wallets.EXPECT().EnsureAccount(mock.Anything, player).Return(nil, domainerr.ErrDatabaseConnection).Once()

		router := newEngine()
		router.GET("/me", Authenticate(stubVerifier{"t": player}, logger.NewNoopLogger()), ProvisionAccount(wallets, logger.NewNoopLogger()), whoami)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer t")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "Service temporarily unavailable")
	})

	t.Run("Anonymous callers are rejected", func(t *testing.T) {
		router := newEngine()
		router.GET("/me", ProvisionAccount(musecase.NewMockWalletUseCase(t), logger.NewNoopLogger()), whoami)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
