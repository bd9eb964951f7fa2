package handlers

import (
	"errors"
	"net/http"

	"github.com/Karlyle101/tip-me-api/internal/middleware"
	"github.com/Karlyle101/tip-me-api/internal/models"
	"github.com/Karlyle101/tip-me-api/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TipsHandler struct {
	tipService *services.TipService
	logger     *zap.Logger
}

func NewTipsHandler(tipService *services.TipService, logger *zap.Logger) *TipsHandler {
	return &TipsHandler{tipService: tipService, logger: logger}
}

type CreateTipRequest struct {
	ToHandle    string `json:"toHandle" binding:"required"`
	AmountCents int64  `json:"amountCents" binding:"required"`
	Message     string `json:"message"`
	FromEmail   string `json:"fromEmail"`
}

type TipResponse struct {
	Tip *models.Tip `json:"tip"`
}

type TipListResponse struct {
	Tips []models.Tip `json:"tips"`
}

// Create godoc
// @Summary Send a tip
// @Description Create a tip for the handle's owner. No authentication needed;
// @Description anonymous tippers may leave an email for a receipt.
// @Tags tips
// @Accept json
// @Produce json
// @Param request body CreateTipRequest true "Tip details"
// @Success 201 {object} TipResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tips [post]
func (h *TipsHandler) Create(c *gin.Context) {
	var req CreateTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	var fromUserID *uint
	if user := middleware.CurrentUser(c); user != nil {
		fromUserID = &user.ID
	}

	tip, err := h.tipService.Create(req.ToHandle, req.AmountCents, req.Message, req.FromEmail, fromUserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRecipientNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "recipient not found"})
		case errors.Is(err, services.ErrInvalidTipAmount),
			errors.Is(err, services.ErrMessageTooLong),
			errors.Is(err, services.ErrInvalidFromEmail):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			h.logger.Error("create tip failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, TipResponse{Tip: tip})
}

// Incoming godoc
// @Summary Tips received
// @Description Tips where the caller is the recipient, newest first
// @Tags tips
// @Produce json
// @Security BearerAuth
// @Success 200 {object} TipListResponse
// @Failure 401 {object} ErrorResponse
// @Router /tips/incoming [get]
func (h *TipsHandler) Incoming(c *gin.Context) {
	user := middleware.CurrentUser(c)

	tips, err := h.tipService.ListIncoming(user.ID)
	if err != nil {
		h.logger.Error("list incoming tips failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	if tips == nil {
		tips = []models.Tip{}
	}

	c.JSON(http.StatusOK, TipListResponse{Tips: tips})
}

// Outgoing godoc
// @Summary Tips sent
// @Description Tips where the caller is the sender, newest first
// @Tags tips
// @Produce json
// @Security BearerAuth
// @Success 200 {object} TipListResponse
// @Failure 401 {object} ErrorResponse
// @Router /tips/outgoing [get]
func (h *TipsHandler) Outgoing(c *gin.Context) {
	user := middleware.CurrentUser(c)

	tips, err := h.tipService.ListOutgoing(user.ID)
	if err != nil {
		h.logger.Error("list outgoing tips failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	if tips == nil {
		tips = []models.Tip{}
	}

	c.JSON(http.StatusOK, TipListResponse{Tips: tips})
}
