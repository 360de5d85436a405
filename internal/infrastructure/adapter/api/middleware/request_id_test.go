package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/logger"
)

func TestRequestIDMiddleware(t *testing.T) {
	router := newEngine()
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, RequestID(c)+"|"+logger.RequestIDFromContext(c.Request.Context()))
	})

	t.Run("Echoes the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "req-abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-abc", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "req-abc|req-abc", w.Body.String())
	})

	t.Run("Generates an id when none or an oversized one is sent", func(t *testing.T) {
		for _, sent := range []string{"", strings.Repeat("x", 200)} {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if sent != "" {
				req.Header.Set(RequestIDHeader, sent)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
			assert.NoError(t, err)
		}
	})
}

func TestCORS(t *testing.T) {
	newRouter := func(origins ...string) *gin.Engine {
		router := newEngine()
		router.Use(CORS(origins))
		router.GET("/api/tournaments", func(c *gin.Context) { c.Status(http.StatusOK) })
		return router
	}

	t.Run("Preflight from an allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/tournaments", nil)
		req.Header.Set("Origin", "https://arena.example")
		w := httptest.NewRecorder()
		newRouter("https://arena.example").ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://arena.example", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "If-Match")
	})

	t.Run("Unknown origin gets no CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tournaments", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		newRouter("https://arena.example").ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Wildcard reflects the origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tournaments", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		newRouter("*").ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
