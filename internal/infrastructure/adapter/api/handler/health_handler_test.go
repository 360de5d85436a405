package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/logger"
)

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) HealthCheck(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("health check without deadline")
	}
	return s.err
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "Database up", wantCode: http.StatusOK, wantBody: `{"status":"ok","database":"up"}`},
		{name: "Database down", err: errors.New("dial tcp: refused"), wantCode: http.StatusServiceUnavailable, wantBody: `{"status":"unavailable","database":"down"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(stubHealthChecker{err: tt.err}, logger.NewNoopLogger())
			router := newTestRouter(nil)
			router.GET("/healthz", h.Health)

			w := perform(router, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
