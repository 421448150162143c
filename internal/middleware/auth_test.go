package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/bookhaven-golang/internal/auth"
	"github.com/bookhaven/bookhaven-golang/internal/models"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
	router.GET("/admin", AuthMiddleware(), AdminMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	auth.SetSecret("test-secret")
	router := newAuthRouter()

	rec := doRequest(router, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareBadScheme(t *testing.T) {
	auth.SetSecret("test-secret")
	router := newAuthRouter()

	rec := doRequest(router, "/protected", "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	auth.SetSecret("test-secret")
	router := newAuthRouter()

	rec := doRequest(router, "/protected", "Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	auth.SetSecret("test-secret")
	router := newAuthRouter()

	token, err := auth.GenerateToken(42, models.RoleCustomer)
	require.NoError(t, err)

	rec := doRequest(router, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "42")
}

func TestAdminMiddlewareRejectsCustomer(t *testing.T) {
	auth.SetSecret("test-secret")
	router := newAuthRouter()

	token, err := auth.GenerateToken(42, models.RoleCustomer)
	require.NoError(t, err)

	rec := doRequest(router, "/admin", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	auth.SetSecret("test-secret")
	router := newAuthRouter()

	token, err := auth.GenerateToken(1, models.RoleAdmin)
	require.NoError(t, err)

	rec := doRequest(router, "/admin", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
}
