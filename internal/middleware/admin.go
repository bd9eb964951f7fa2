package middleware

import (
	"net/http"

	"github.com/Karlyle101/tip-me-api/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireAdmin gates a route group to callers whose stored role is ADMIN.
// It must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		if user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
