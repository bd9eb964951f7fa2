package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Karlyle101/tip-me-api/internal/models"
	"github.com/Karlyle101/tip-me-api/internal/repository"
	"github.com/Karlyle101/tip-me-api/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	userRepo      *repository.UserRepository
	authService   *services.AuthService
	tipService    *services.TipService
	payoutService *services.PayoutService
	logger        *zap.Logger
}

func NewAdminHandler(userRepo *repository.UserRepository, authService *services.AuthService, tipService *services.TipService, payoutService *services.PayoutService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		userRepo:      userRepo,
		authService:   authService,
		tipService:    tipService,
		payoutService: payoutService,
		logger:        logger,
	}
}

type UserListResponse struct {
	Users []models.User `json:"users"`
}

type UpdateTipStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePayoutStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// ListUsers godoc
// @Summary List all users (Admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserListResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userRepo.FindAll()
	if err != nil {
		h.logger.Error("list users failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	if users == nil {
		users = []models.User{}
	}

	c.JSON(http.StatusOK, UserListResponse{Users: users})
}

// ListTips godoc
// @Summary List all tips (Admin)
// @Description Every tip with recipient and sender summaries, optionally filtered by status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (PENDING, COMPLETED, FAILED)"
// @Success 200 {object} TipListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/tips [get]
func (h *AdminHandler) ListTips(c *gin.Context) {
	status := models.TipStatus(c.Query("status"))

	tips, err := h.tipService.ListAll(status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTipStatus) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("list tips failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	if tips == nil {
		tips = []models.Tip{}
	}

	c.JSON(http.StatusOK, TipListResponse{Tips: tips})
}

// UpdateTipStatus godoc
// @Summary Update tip status (Admin)
// @Description Force any status value; no transition guard
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tip ID"
// @Param request body UpdateTipStatusRequest true "New status"
// @Success 200 {object} TipResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/tips/{id}/status [patch]
func (h *AdminHandler) UpdateTipStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "tip not found"})
		return
	}

	var req UpdateTipStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	tip, err := h.tipService.UpdateStatus(uint(id), models.TipStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTipStatus):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrTipNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "tip not found"})
		default:
			h.logger.Error("update tip status failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, TipResponse{Tip: tip})
}

// ListPayouts godoc
// @Summary List all payouts (Admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PayoutListResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/payouts [get]
func (h *AdminHandler) ListPayouts(c *gin.Context) {
	payouts, err := h.payoutService.ListAll()
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

// UpdatePayoutStatus godoc
// @Summary Update payout status (Admin)
// @Description Force any status value; no transition guard
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payout ID"
// @Param request body UpdatePayoutStatusRequest true "New status"
// @Success 200 {object} PayoutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/payouts/{id}/status [patch]
func (h *AdminHandler) UpdatePayoutStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "payout not found"})
		return
	}

	var req UpdatePayoutStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	payout, err := h.payoutService.UpdateStatus(uint(id), models.PayoutStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPayoutStatus):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrPayoutNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "payout not found"})
		default:
			h.logger.Error("update payout status failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, PayoutResponse{Payout: payout})
}

// UpdateUserRole godoc
// @Summary Update user role (Admin)
// @Description Role elevation path; registration never grants ADMIN
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdateUserRoleRequest true "New role"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/users/{id}/role [patch]
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
		return
	}

	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	user, err := h.authService.UpdateUserRole(uint(id), models.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
		default:
			h.logger.Error("update user role failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, UserResponse{User: user})
}
