package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"
)

// UserIDKey is the context key under which Auth stores the authenticated
// user id.
const UserIDKey = "user_id"

// Auth validates the Bearer token and puts the user id into the request
// context. Everything else about identity (sessions, sign-up) lives in the
// external auth service; this service only needs the id.
func Auth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")

		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		token, err := jwt.Parse(strings.TrimPrefix(header, prefix), func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		userID, ok := claims["userId"].(float64)
		if !ok || userID <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		c.Set(UserIDKey, int64(userID))
		c.Next()
	}
}
