package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/Karlyle101/tip-me-api/internal/repository"
	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

type QRHandler struct {
	userRepo *repository.UserRepository
	baseURL  string
	logger   *zap.Logger
}

func NewQRHandler(userRepo *repository.UserRepository, baseURL string, logger *zap.Logger) *QRHandler {
	return &QRHandler{userRepo: userRepo, baseURL: baseURL, logger: logger}
}

// Show godoc
// @Summary Tip QR code
// @Description PNG QR encoding the handle's tip deep link
// @Tags qr
// @Produce png
// @Param handle path string true "Public handle"
// @Success 200 {file} file "PNG image"
// @Failure 404 {object} ErrorResponse
// @Router /qr/{handle} [get]
func (h *QRHandler) Show(c *gin.Context) {
	handle := c.Param("handle")

	user, err := h.userRepo.FindByHandle(handle)
	if err != nil {
		h.logger.Error("qr lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
		return
	}

	tipURL := fmt.Sprintf("%s/tips?toHandle=%s", h.baseURL, url.QueryEscape(handle))
	png, err := qrcode.Encode(tipURL, qrcode.Medium, 512)
	if err != nil {
		h.logger.Error("qr encode failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
