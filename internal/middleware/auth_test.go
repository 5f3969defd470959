package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func setupAuthRouter(t *testing.T) http.Handler {
	t.Helper()
	r := ginext.New("test")
	api := r.Group("/", Auth(testSecret))
	api.GET("/me", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"userId": c.GetInt64(UserIDKey)})
	})
	return r
}

func TestAuth_ValidToken(t *testing.T) {
	r := setupAuthRouter(t)

	token := signToken(t, testSecret, jwt.MapClaims{"userId": 42})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":42}`, w.Body.String())
}

func TestAuth_MissingHeader(t *testing.T) {
	r := setupAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_WrongSecret(t *testing.T) {
	r := setupAuthRouter(t)

	token := signToken(t, "other-secret", jwt.MapClaims{"userId": 42})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MissingUserIDClaim(t *testing.T) {
	r := setupAuthRouter(t)

	token := signToken(t, testSecret, jwt.MapClaims{"sub": "someone"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
