package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	mockcore "github.com/amirhossein-jamali/arena-wallet/mocks/port/core"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		expects func(l *mockcore.MockLogger, fields any)
	}{
		{"success logs at info", http.StatusOK, func(l *mockcore.MockLogger, fields any) {
			l.EXPECT().Info("Request served", fields).Once()
		}},
		{"client error logs at warn", http.StatusConflict, func(l *mockcore.MockLogger, fields any) {
			l.EXPECT().Warn("Request rejected", fields).Once()
		}},
		{"server error logs at error", http.StatusServiceUnavailable, func(l *mockcore.MockLogger, fields any) {
			l.EXPECT().Error("Request failed", fields).Once()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := mockcore.NewMockLogger(t)
			status := tt.status
			tt.expects(log, mock.MatchedBy(func(f map[string]any) bool {
				return f["status"] == status &&
					f["route"] == "/api/tournaments/:id" &&
					f["path"] == "/api/tournaments/t-9" &&
					f["user_id"] == "user-1" &&
					f["request_id"] == "req-42"
			}))

			router := newEngine()
			router.Use(func(c *gin.Context) {
				SetPrincipal(c, player)
				c.Next()
			}, Logger(log))
			router.GET("/api/tournaments/:id", func(c *gin.Context) {
				c.Status(status)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/tournaments/t-9", nil)
			req.Header.Set("X-Request-ID", "req-42")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, status, w.Code)
		})
	}
}
