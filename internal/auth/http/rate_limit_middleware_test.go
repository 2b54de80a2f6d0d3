package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(rps float64, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := gin.New()
	router.POST("/v1/auth/login", LoginRateLimitMiddleware(rps, burst, logger), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestLoginRateLimitMiddleware(t *testing.T) {
	t.Run("Success_WithinBurst", func(t *testing.T) {
		router := setupRateLimitRouter(1, 3)

		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("Error_BurstExhausted", func(t *testing.T) {
		router := setupRateLimitRouter(0.001, 2)

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
			req.RemoteAddr = "10.0.0.2:1234"
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
	})

	t.Run("Success_IndependentPerIP", func(t *testing.T) {
		router := setupRateLimitRouter(0.001, 1)

		first := httptest.NewRecorder()
		firstReq := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
		firstReq.RemoteAddr = "10.0.0.3:1234"
		router.ServeHTTP(first, firstReq)
		assert.Equal(t, http.StatusOK, first.Code)

		// The first IP is exhausted, a different IP is not.
		blocked := httptest.NewRecorder()
		blockedReq := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
		blockedReq.RemoteAddr = "10.0.0.3:1234"
		router.ServeHTTP(blocked, blockedReq)
		assert.Equal(t, http.StatusTooManyRequests, blocked.Code)

		other := httptest.NewRecorder()
		otherReq := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
		otherReq.RemoteAddr = "10.0.0.4:1234"
		router.ServeHTTP(other, otherReq)
		assert.Equal(t, http.StatusOK, other.Code)
	})
}
