package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
	domainerr "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	coreport "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/core"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/persistence"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/usecase"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/api/dto"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/api/middleware"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles privileged HTTP requests
type AdminHandler struct {
	adjuster usecase.AdminAdjuster
	queries  usecase.UserQueries
	coupons  persistence.CouponRepository
	metrics  *metrics.Metrics
	logger   coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(
	adjuster usecase.AdminAdjuster,
	queries usecase.UserQueries,
	coupons persistence.CouponRepository,
	m *metrics.Metrics,
	logger coreport.Logger,
) *AdminHandler {
	return &AdminHandler{
		adjuster: adjuster,
		queries:  queries,
		coupons:  coupons,
		metrics:  m,
		logger:   logger,
	}
}

// AdjustCredits handles the POST /api/admin/users/:userId/credits endpoint
func (h *AdminHandler) AdjustCredits(c *gin.Context) {
	targetID, ok := pathUserID(c)
	if !ok {
		return
	}

	var req dto.AdjustCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "amount is required",
		})
		return
	}

	txn, user, err := h.adjuster.Adjust(c.Request.Context(), middleware.Role(c), targetID, req.Amount, req.Note)
	if err != nil {
		if domainerr.IsInsufficientCreditError(err) {
			h.metrics.DebitsRejected.Inc()
		}
		respondError(c, h.logger, "Admin adjustment", err, map[string]any{
			"actorId":  middleware.UserID(c),
			"targetId": targetID,
			"amount":   req.Amount,
		})
		return
	}

	h.metrics.TransactionsRecorded.WithLabelValues(string(entity.TypeAdminAdd)).Inc()

	c.JSON(http.StatusCreated, dto.AdjustCreditResponse{
		Transaction: dto.NewTransactionResponse(txn),
		Balance:     user.Balance(),
	})
}

// GetUserBalance handles the GET /api/admin/users/:userId/balance endpoint
func (h *AdminHandler) GetUserBalance(c *gin.Context) {
	targetID, ok := pathUserID(c)
	if !ok {
		return
	}

	balance, err := h.queries.GetBalance(c.Request.Context(), targetID)
	if err != nil {
		respondError(c, h.logger, "Admin balance lookup", err, map[string]any{
			"targetId": targetID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{UserID: targetID, Balance: balance})
}

// CreateCoupon handles the POST /api/admin/coupons endpoint
func (h *AdminHandler) CreateCoupon(c *gin.Context) {
	var req dto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "code, creditAmount and usageLimit are required",
		})
		return
	}

	var expiresAt *time.Time
	if req.ExpiresAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.ExpiresAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrValidation),
				Message: "expiresAt must be RFC3339",
			})
			return
		}
		expiresAt = &parsed
	}

	coupon, err := entity.NewCoupon(req.Code, req.CreditAmount, req.UsageLimit, expiresAt)
	if err != nil {
		respondError(c, h.logger, "Coupon creation", err, map[string]any{"code": req.Code})
		return
	}

	if err := h.coupons.Create(c.Request.Context(), coupon); err != nil {
		respondError(c, h.logger, "Coupon creation", err, map[string]any{"code": req.Code})
		return
	}

	h.logger.Info("Coupon created", map[string]any{
		"code":       coupon.Code,
		"amount":     coupon.CreditAmount,
		"usageLimit": coupon.UsageLimit,
	})

	c.JSON(http.StatusCreated, dto.NewCouponResponse(coupon))
}

// pathUserID parses the :userId path segment, writing the error response itself
func pathUserID(c *gin.Context) (uint64, bool) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Invalid user ID format",
		})
		return 0, false
	}
	return userID, true
}
