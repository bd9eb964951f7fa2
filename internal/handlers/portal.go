package handlers

import (
	"net/http"

	"github.com/Karlyle101/tip-me-api/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PortalHandler struct {
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

func NewPortalHandler(userRepo *repository.UserRepository, logger *zap.Logger) *PortalHandler {
	return &PortalHandler{userRepo: userRepo, logger: logger}
}

// Show godoc
// @Summary Tip portal page
// @Description Self-contained HTML page with a tip form for one handle
// @Tags portal
// @Produce html
// @Param handle path string true "Public handle"
// @Success 200 {string} string "HTML page"
// @Failure 404 {string} string "User not found"
// @Router /portal/{handle} [get]
func (h *PortalHandler) Show(c *gin.Context) {
	handle := c.Param("handle")

	user, err := h.userRepo.FindByHandle(handle)
	if err != nil {
		h.logger.Error("portal lookup failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if user == nil {
		c.String(http.StatusNotFound, "User not found")
		return
	}

	c.HTML(http.StatusOK, "portal.html", gin.H{
		"Name":   user.Name,
		"Handle": user.Handle,
	})
}
