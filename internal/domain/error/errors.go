package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation         = 4001
	CodeInsufficientCredit = 4002
	CodeInvalidCoupon      = 4003
	CodeInvalidAmount      = 4004
	CodeInvalidUserID      = 4005
	CodeUserNotFound       = 4040
	CodeNotFound           = 4041
	CodeUnauthorized       = 4010
	CodeForbidden          = 4030
	CodeConflict           = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeTransient      = 5030
)

// Base error types
var (
	// ErrUnauthorized is returned when no valid identity accompanies the request
	ErrUnauthorized = errors.New("missing or invalid identity")

	// ErrForbidden is returned when the actor lacks the required role
	ErrForbidden = errors.New("insufficient role for this operation")

	// ErrValidation is returned when request input is missing or malformed
	ErrValidation = errors.New("invalid request input")

	// ErrInvalidAmount is returned when a transaction amount is zero or has the wrong sign
	ErrInvalidAmount = errors.New("invalid transaction amount")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidTransactionType is returned when the cause is not a recognized type
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidIIDNumber is returned when the external identifier is empty
	ErrInvalidIIDNumber = errors.New("iid number cannot be empty")

	// ErrInsufficientBalance is returned when a debit would drive the balance below zero
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInsufficientCredit is returned when approval issuance finds no credit to spend
	ErrInsufficientCredit = errors.New("insufficient credit for approval")

	// ErrInvalidCoupon is returned for unknown, inactive, expired or exhausted coupons
	ErrInvalidCoupon = errors.New("coupon is invalid or exhausted")

	// ErrUserNotFound is returned when the referenced user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrApprovalNotFound is returned when the requested approval doesn't exist
	ErrApprovalNotFound = errors.New("approval not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDuplicateApproval is returned when the (userId, iidNumber) uniqueness
	// constraint rejects an insert; issuance resolves it by returning the winner
	ErrDuplicateApproval = errors.New("approval already exists for this identifier")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrConflict is returned when a write loses a uniqueness race that the
	// operation cannot resolve internally
	ErrConflict = errors.New("conflicting concurrent operation")

	// ErrTransient is returned for storage contention or timeouts; safe to retry
	// for idempotent operations only
	ErrTransient = errors.New("transient storage error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem reaching the database
	ErrDatabaseConnection = errors.New("database connection error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrInsufficientCredit):
		return CodeInsufficientCredit
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientCredit
	case errors.Is(err, ErrInvalidCoupon):
		return CodeInvalidCoupon
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrInvalidTransactionType),
		errors.Is(err, ErrInvalidIIDNumber):
		return CodeValidation
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrApprovalNotFound),
		errors.Is(err, ErrTransactionNotFound),
		errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrDuplicateApproval),
		errors.Is(err, ErrDuplicateUser),
		errors.Is(err, ErrConflict):
		return CodeConflict
	case errors.Is(err, ErrTransient):
		return CodeTransient
	default:
		return CodeInternalServer
	}
}

// InsufficientCreditError provides detailed information for a tripped balance guard
type InsufficientCreditError struct {
	UserID      uint64
	Requested   int64
	CurrBalance int64
}

// Error implements the error interface
func (e *InsufficientCreditError) Error() string {
	return fmt.Sprintf("insufficient credit for user %d: required %d, available %d",
		e.UserID, e.Requested, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientCredit
func (e *InsufficientCreditError) Is(target error) bool {
	return target == ErrInsufficientCredit || target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientCreditError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_credit",
		"user_id":         e.UserID,
		"requested":       e.Requested,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientCredit,
	}
}

// NewInsufficientCreditError creates a new detailed insufficient credit error
func NewInsufficientCreditError(userID uint64, requested, currentBalance int64) error {
	return &InsufficientCreditError{
		UserID:      userID,
		Requested:   requested,
		CurrBalance: currentBalance,
	}
}

// LedgerError represents a failure while recording a credit movement
type LedgerError struct {
	UserID uint64
	Amount int64
	Type   string
	Reason string
	Err    error
}

// Error implements the error interface for LedgerError
func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger operation failed for user %d (type: %s, amount: %d): %s - %v",
		e.UserID, e.Type, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "ledger_error",
		"user_id":    e.UserID,
		"amount":     e.Amount,
		"tx_type":    e.Type,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewLedgerError creates a detailed ledger error
func NewLedgerError(userID uint64, amount int64, txType, reason string, err error) error {
	return &LedgerError{
		UserID: userID,
		Amount: amount,
		Type:   txType,
		Reason: reason,
		Err:    err,
	}
}

// InvalidCouponError carries the rejected coupon code and the failing check
type InvalidCouponError struct {
	Code   string
	Reason string
}

// Error implements the error interface
func (e *InvalidCouponError) Error() string {
	return fmt.Sprintf("coupon %q rejected: %s", e.Code, e.Reason)
}

// Is checks if the target error is an ErrInvalidCoupon
func (e *InvalidCouponError) Is(target error) bool {
	return target == ErrInvalidCoupon
}

// LogFields returns a map of fields for structured logging
func (e *InvalidCouponError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "invalid_coupon",
		"code":       e.Code,
		"reason":     e.Reason,
		"error_code": CodeInvalidCoupon,
	}
}

// NewInvalidCouponError creates a new detailed invalid coupon error
func NewInvalidCouponError(code, reason string) error {
	return &InvalidCouponError{Code: code, Reason: reason}
}

// IsInsufficientCreditError checks if the error tripped the balance guard
func IsInsufficientCreditError(err error) bool {
	return errors.Is(err, ErrInsufficientCredit) || errors.Is(err, ErrInsufficientBalance)
}

// IsInvalidCouponError checks if the error is a coupon rejection
func IsInvalidCouponError(err error) bool {
	return errors.Is(err, ErrInvalidCoupon)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrApprovalNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsDuplicateApprovalError checks if the error is a lost uniqueness race on issuance
func IsDuplicateApprovalError(err error) bool {
	return errors.Is(err, ErrDuplicateApproval)
}

// IsForbiddenError checks if the error is a role rejection
func IsForbiddenError(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsTransientError checks if the error is eligible for caller-side retry
func IsTransientError(err error) bool {
	return errors.Is(err, ErrTransient)
}

// IsValidationError checks if the error is any malformed-input rejection
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidTransactionType) ||
		errors.Is(err, ErrInvalidIIDNumber)
}
