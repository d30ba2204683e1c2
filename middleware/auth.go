package middleware

import (
	"net/http"
	"strings"

	"growlytics/services/user"
	"growlytics/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and checks the session is
// still live in the auth cache, so revoked tokens die immediately. The
// authenticated user ID is injected into the context as "userID".
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		if !user.SessionExists(c.Request.Context(), userID, tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session revoked or expired"})
			return
		}

		c.Set("userID", userID)
		c.Set("token", tokenString)
		c.Next()
	}
}

// UserID returns the authenticated user ID set by AuthMiddleware.
func UserID(c *gin.Context) string {
	return c.GetString("userID")
}
