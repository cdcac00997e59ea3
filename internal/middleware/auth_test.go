package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercode/careercode-api/internal/auth"
)

func newGuardedRouter(tokens *auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", RequireToken(tokens), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextEmailKey))
	})
	return r
}

func TestRequireTokenMissingCookie(t *testing.T) {
	r := newGuardedRouter(auth.NewService("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized access")
}

func TestRequireTokenInvalidCookie(t *testing.T) {
	r := newGuardedRouter(auth.NewService("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden access")
}

func TestRequireTokenExpiredCookie(t *testing.T) {
	expired := auth.NewService("test-secret", -time.Minute)
	token, err := expired.Issue("alice@example.com")
	require.NoError(t, err)

	r := newGuardedRouter(auth.NewService("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireTokenValidCookie(t *testing.T) {
	tokens := auth.NewService("test-secret", time.Hour)
	token, err := tokens.Issue("alice@example.com")
	require.NoError(t, err)

	r := newGuardedRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice@example.com", w.Body.String())
}
