package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arslan020/techxchange/models"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func newRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{ValidateToken(testSecret)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.GetString("user_id"), "role": c.GetString("user_role")})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestValidateTokenMissingHeader(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	newRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenExpired(t *testing.T) {
	token := signTestToken(t, jwt.MapClaims{
		"_id": "u1", "role": "buyer", "exp": time.Now().Add(-time.Minute).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	newRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenSetsIdentity(t *testing.T) {
	token := signTestToken(t, jwt.MapClaims{
		"_id": "u1", "role": "seller", "exp": time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	newRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"u1","role":"seller"}`, w.Body.String())
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	token := signTestToken(t, jwt.MapClaims{
		"_id": "u1", "role": "buyer", "exp": time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	newRouter(RequireRole(models.RoleAdmin)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleAllowsListedRole(t *testing.T) {
	token := signTestToken(t, jwt.MapClaims{
		"_id": "u1", "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	newRouter(RequireRole(models.RoleSeller, models.RoleAdmin)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
