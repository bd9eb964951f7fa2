package handlers

import (
	"net/http"

	"github.com/Karlyle101/tip-me-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

type UsersHandler struct{}

func NewUsersHandler() *UsersHandler {
	return &UsersHandler{}
}

// Me godoc
// @Summary Current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} ErrorResponse
// @Router /users/me [get]
func (h *UsersHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, UserResponse{User: middleware.CurrentUser(c)})
}
