package handler

import (
	"net/http"
	"strconv"

	coreport "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/core"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/persistence"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/usecase"
	userUseCase "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/usecase/user"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/api/dto"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// UserHandler handles the caller's own balance and history requests
type UserHandler struct {
	queries usecase.UserQueries
	logger  coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	queries usecase.UserQueries,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		queries: queries,
		logger:  logger,
	}
}

// GetBalance handles the GET /api/me/balance endpoint
func (h *UserHandler) GetBalance(c *gin.Context) {
	userID := middleware.UserID(c)

	balance, err := h.queries.GetBalance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "Balance lookup", err, map[string]any{
			"userId": userID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{UserID: userID, Balance: balance})
}

// ListTransactions handles the GET /api/me/transactions endpoint
func (h *UserHandler) ListTransactions(c *gin.Context) {
	userID := middleware.UserID(c)
	page := queryPage(c)

	txns, total, err := h.queries.ListTransactions(c.Request.Context(), userID, page)
	if err != nil {
		respondError(c, h.logger, "Transaction listing", err, map[string]any{
			"userId": userID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionListResponse(txns, total, page.Number, page.Size))
}

// GetTransaction handles the GET /api/me/transactions/:transactionId endpoint
func (h *UserHandler) GetTransaction(c *gin.Context) {
	userID := middleware.UserID(c)
	publicID := c.Param("transactionId")

	txn, err := h.queries.GetTransaction(c.Request.Context(), userID, publicID)
	if err != nil {
		respondError(c, h.logger, "Transaction lookup", err, map[string]any{
			"userId":        userID,
			"transactionId": publicID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(txn))
}

// ListApprovals handles the GET /api/me/approvals endpoint
func (h *UserHandler) ListApprovals(c *gin.Context) {
	userID := middleware.UserID(c)
	page := queryPage(c)

	approvals, total, err := h.queries.ListApprovals(c.Request.Context(), userID, page)
	if err != nil {
		respondError(c, h.logger, "Approval listing", err, map[string]any{
			"userId": userID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewApprovalListResponse(approvals, total, page.Number, page.Size))
}

// queryPage reads the page and pageSize query parameters, clamped to
// the listing bounds. Malformed values fall back to the defaults.
func queryPage(c *gin.Context) persistence.Page {
	number, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(userUseCase.DefaultPageSize)))
	return userUseCase.ClampPage(persistence.Page{Number: number, Size: size})
}
