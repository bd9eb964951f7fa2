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

type PayoutsHandler struct {
	payoutService *services.PayoutService
	logger        *zap.Logger
}

func NewPayoutsHandler(payoutService *services.PayoutService, logger *zap.Logger) *PayoutsHandler {
	return &PayoutsHandler{payoutService: payoutService, logger: logger}
}

type RequestPayoutRequest struct {
	AmountCents int64 `json:"amountCents" binding:"required"`
}

type PayoutResponse struct {
	Payout *models.Payout `json:"payout"`
}

type PayoutListResponse struct {
	Payouts []models.Payout `json:"payouts"`
}

// Request godoc
// @Summary Request a payout
// @Description Create a REQUESTED payout for the caller
// @Tags payouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RequestPayoutRequest true "Payout amount"
// @Success 201 {object} PayoutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /payouts/request [post]
func (h *PayoutsHandler) Request(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req RequestPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	payout, err := h.payoutService.Request(user.ID, req.AmountCents)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPayoutAmount) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("request payout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, PayoutResponse{Payout: payout})
}

// List godoc
// @Summary List own payouts
// @Description The caller's payouts, newest first
// @Tags payouts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PayoutListResponse
// @Failure 401 {object} ErrorResponse
// @Router /payouts [get]
func (h *PayoutsHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	payouts, err := h.payoutService.ListMine(user.ID)
	if err != nil {
		h.logger.Error("list payouts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	if payouts == nil {
		payouts = []models.Payout{}
	}

	c.JSON(http.StatusOK, PayoutListResponse{Payouts: payouts})
}
