package middleware

import (
	"net/http"
	"strings"

	"github.com/Karlyle101/tip-me-api/internal/models"
	"github.com/Karlyle101/tip-me-api/internal/repository"
	"github.com/Karlyle101/tip-me-api/internal/services"
	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

type AuthMiddleware struct {
	tokenService *services.TokenService
	userRepo     *repository.UserRepository
}

func NewAuthMiddleware(tokenService *services.TokenService, userRepo *repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		userRepo:     userRepo,
	}
}

// RequireAuth validates the Bearer token and re-resolves the user from the
// store, so a deleted user's token stops working immediately.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header"})
			c.Abort()
			return
		}

		claims, err := m.tokenService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		user, err := m.userRepo.FindByID(claims.UID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			c.Abort()
			return
		}
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalAuth attaches the user when a valid Bearer token is supplied and
// does nothing otherwise. Used on routes that work anonymously but attribute
// the action when the caller is logged in.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := m.tokenService.ValidateToken(parts[1])
		if err != nil {
			c.Next()
			return
		}

		user, err := m.userRepo.FindByID(claims.UID)
		if err != nil || user == nil {
			c.Next()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by RequireAuth.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
