package handler

import (
	"net/http"

	domainerr "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	coreport "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/core"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/usecase"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/api/dto"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/api/middleware"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
)

// CouponHandler handles coupon redemption HTTP requests
type CouponHandler struct {
	redeemer usecase.CouponRedeemer
	metrics  *metrics.Metrics
	logger   coreport.Logger
}

// NewCouponHandler creates a new coupon handler instance
func NewCouponHandler(
	redeemer usecase.CouponRedeemer,
	m *metrics.Metrics,
	logger coreport.Logger,
) *CouponHandler {
	return &CouponHandler{
		redeemer: redeemer,
		metrics:  m,
		logger:   logger,
	}
}

// Redeem handles the POST /api/coupons/redeem endpoint
func (h *CouponHandler) Redeem(c *gin.Context) {
	userID := middleware.UserID(c)

	var req dto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "code is required",
		})
		return
	}

	txn, user, err := h.redeemer.Redeem(c.Request.Context(), userID, req.Code)
	if err != nil {
		respondError(c, h.logger, "Coupon redemption", err, map[string]any{
			"userId": userID,
			"code":   req.Code,
		})
		return
	}

	h.metrics.CouponsRedeemed.Inc()

	c.JSON(http.StatusOK, dto.RedeemResponse{
		Transaction: dto.NewTransactionResponse(txn),
		Balance:     user.Balance(),
	})
}
