package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/myfinance/tracker-api/utils"
)

const (
	userIDKey   = "user_id"
	usernameKey = "username"
)

// AuthMiddleware validates the bearer token and stores the caller's identity
// in the request context. Requests without a valid token are rejected.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": utils.ErrMissingToken.Error()})
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": utils.ErrInvalidToken.Error()})
			c.Abort()
			return
		}

		claims, err := utils.ValidateAccessToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": utils.ErrInvalidToken.Error()})
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(usernameKey, claims.Username)
		c.Next()
	}
}

// GetUserID returns the authenticated user's id, or "" when unauthenticated.
func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// GetUsername returns the authenticated username, or "" when unauthenticated.
func GetUsername(c *gin.Context) string {
	return c.GetString(usernameKey)
}
