package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AlbertTesco/Horns-and-hooves/auth"
)

// UserIDKey is the context key under which the authenticated user id is stored.
const UserIDKey = "user_id"

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// RequireAuth aborts with 401 unless the request carries a valid bearer token.
func RequireAuth(c *gin.Context) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	userID, err := auth.ParseToken(tokenString, auth.Secret())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set(UserIDKey, userID)
	c.Next()
}

// OptionalAuth sets the user id when a valid token is present but never aborts.
// Cart listing serves anonymous callers an empty result instead of a 401.
func OptionalAuth(c *gin.Context) {
	if tokenString := bearerToken(c); tokenString != "" {
		if userID, err := auth.ParseToken(tokenString, auth.Secret()); err == nil {
			c.Set(UserIDKey, userID)
		}
	}
	c.Next()
}

// CurrentUserID returns the authenticated user id from the context.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
