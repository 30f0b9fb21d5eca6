package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vickinc/eazybizy/internal/utils/auth"
)

const (
	testSecret = "test-secret"
	testIssuer = "eazybizy"
)

func newTestRouter(t *testing.T, handlers ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	r.Use(StructuredLoggingMiddleware(logger))
	r.Use(handlers...)
	return r
}

func TestStructuredLoggingMiddleware_InjectsLogger(t *testing.T) {
	r := newTestRouter(t)
	r.GET("/ping", func(c *gin.Context) {
		assert.NotSame(t, slog.Default(), GetLoggerFromCtx(c.Request.Context()))
		assert.NotNil(t, GetLoggerFromContext(c))
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Same(t, slog.Default(), GetLoggerFromCtx(req.Context()))
}

func TestAuthMiddleware(t *testing.T) {
	valid, err := auth.GenerateJWT("user-1", testSecret, time.Hour, testIssuer)
	require.NoError(t, err)
	expired, err := auth.GenerateJWT("user-1", testSecret, -time.Minute, testIssuer)
	require.NoError(t, err)
	wrongIssuer, err := auth.GenerateJWT("user-1", testSecret, time.Hour, "someone-else")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantBody: "Authorization header required"},
		{name: "bad format", header: "Token abc", wantStatus: http.StatusUnauthorized, wantBody: "Bearer {token}"},
		{name: "expired", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized, wantBody: "Token has expired"},
		{name: "wrong issuer", header: "Bearer " + wrongIssuer, wantStatus: http.StatusUnauthorized, wantBody: "Invalid token"},
		{name: "valid", header: "Bearer " + valid, wantStatus: http.StatusOK, wantBody: "user-1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(t, AuthMiddleware(testSecret, testIssuer))
			r.GET("/me", func(c *gin.Context) {
				userID, ok := GetUserIDFromContext(c)
				require.True(t, ok)
				c.String(http.StatusOK, userID)
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
		})
	}
}

func TestRateLimit(t *testing.T) {
	lim, err := NewRateLimiter("2-M")
	require.NoError(t, err)

	r := newTestRouter(t, RateLimit(lim))
	r.GET("/limited", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewRateLimiter_InvalidFormat(t *testing.T) {
	_, err := NewRateLimiter("lots")
	assert.Error(t, err)
}
