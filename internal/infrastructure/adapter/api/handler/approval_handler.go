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

// ApprovalHandler handles approval issuance HTTP requests
type ApprovalHandler struct {
	issuer  usecase.ApprovalIssuer
	metrics *metrics.Metrics
	logger  coreport.Logger
}

// NewApprovalHandler creates a new approval handler instance
func NewApprovalHandler(
	issuer usecase.ApprovalIssuer,
	m *metrics.Metrics,
	logger coreport.Logger,
) *ApprovalHandler {
	return &ApprovalHandler{
		issuer:  issuer,
		metrics: m,
		logger:  logger,
	}
}

// Issue handles the POST /api/approvals endpoint. Repeat requests for
// the same iidNumber return the original approval with 200 instead of 201.
func (h *ApprovalHandler) Issue(c *gin.Context) {
	userID := middleware.UserID(c)

	var req dto.ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "iidNumber and confirmationNumber are required",
		})
		return
	}

	approval, created, err := h.issuer.Issue(c.Request.Context(), userID, req.IIDNumber, req.ConfirmationNumber)
	if err != nil {
		if domainerr.IsInsufficientCreditError(err) {
			h.metrics.DebitsRejected.Inc()
		}
		respondError(c, h.logger, "Approval issuance", err, map[string]any{
			"userId":    userID,
			"iidNumber": req.IIDNumber,
		})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		h.metrics.ApprovalsIssued.Inc()
	} else {
		h.metrics.ApprovalRepeats.Inc()
	}

	c.JSON(status, dto.NewApprovalResponse(approval))
}
