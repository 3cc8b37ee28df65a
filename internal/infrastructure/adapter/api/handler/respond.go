package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	coreport "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/core"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// httpStatus maps domain errors to HTTP status codes
func httpStatus(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrForbidden):
		return http.StatusForbidden
	case domainerr.IsInsufficientCreditError(err):
		return http.StatusPaymentRequired
	case domainerr.IsInvalidCouponError(err):
		return http.StatusUnprocessableEntity
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrConflict):
		return http.StatusConflict
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case domainerr.IsTransientError(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs a failed operation and writes the uniform error body
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error, fields map[string]any) {
	status := httpStatus(err)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["error"] = err.Error()
	fields["status"] = status
	if status >= http.StatusInternalServerError {
		logger.Error(operation+" failed", fields)
	} else {
		logger.Warn(operation+" rejected", fields)
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		// never leak driver details
		message = "Internal server error"
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
