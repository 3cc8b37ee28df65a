package handler

import (
	"net/http"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
	domainerr "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	coreport "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/core"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/usecase"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/api/dto"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/api/middleware"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
)

// CreditHandler handles credit purchase HTTP requests
type CreditHandler struct {
	recorder usecase.LedgerRecorder
	metrics  *metrics.Metrics
	logger   coreport.Logger
}

// NewCreditHandler creates a new credit handler instance
func NewCreditHandler(
	recorder usecase.LedgerRecorder,
	m *metrics.Metrics,
	logger coreport.Logger,
) *CreditHandler {
	return &CreditHandler{
		recorder: recorder,
		metrics:  m,
		logger:   logger,
	}
}

// Topup handles the POST /api/credits/topup endpoint
func (h *CreditHandler) Topup(c *gin.Context) {
	userID := middleware.UserID(c)

	var req dto.TopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "amount is required",
		})
		return
	}

	note := ""
	if req.ReferenceID != "" {
		note = "purchase:" + req.ReferenceID
	}

	txn, user, err := h.recorder.Record(c.Request.Context(), userID, req.Amount, entity.TypePurchase, note)
	if err != nil {
		respondError(c, h.logger, "Credit topup", err, map[string]any{
			"userId": userID,
			"amount": req.Amount,
		})
		return
	}

	h.metrics.TransactionsRecorded.WithLabelValues(string(entity.TypePurchase)).Inc()

	c.JSON(http.StatusCreated, dto.TopupResponse{
		Transaction: dto.NewTransactionResponse(txn),
		Balance:     user.Balance(),
	})
}
