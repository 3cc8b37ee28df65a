package middleware

import (
	"net/http"
	"strconv"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
	domainerr "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Context keys set by the identity middleware
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// Identity resolves the caller from the X-User-ID and X-User-Role
// headers set by the upstream gateway. Requests without a valid
// X-User-ID are rejected before reaching any handler.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawID := c.GetHeader("X-User-ID")
		if rawID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Missing required header: X-User-ID",
			})
			return
		}

		userID, err := strconv.ParseUint(rawID, 10, 64)
		if err != nil || userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
				Message: "Invalid X-User-ID header",
			})
			return
		}

		role := c.GetHeader("X-User-Role")
		if role == "" {
			role = entity.RoleUser
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, role)
		c.Next()
	}
}

// RequireAdmin rejects callers whose resolved role is not admin.
// It must run after Identity.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != entity.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrForbidden),
				Message: "Admin role required",
			})
			return
		}
		c.Next()
	}
}

// UserID returns the caller ID resolved by Identity
func UserID(c *gin.Context) uint64 {
	return c.GetUint64(ContextUserID)
}

// Role returns the caller role resolved by Identity
func Role(c *gin.Context) string {
	return c.GetString(ContextRole)
}
