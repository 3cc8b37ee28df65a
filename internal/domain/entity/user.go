package entity

import (
	"time"

	errs "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	coreport "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/core"
)

// Role values supplied by the external identity provider
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a user entity with a credit balance.
// The balance is the single authoritative credit field; it is mutated
// only in lock-step with CreditTransaction creation.
type User struct {
	ID               uint64    // Unique identifier for the user
	Role             string    // Role as reported by the identity provider
	balance          int64     // Credit balance in whole units (private)
	CreatedAt        time.Time // When the user was created
	UpdatedAt        time.Time // When the user was last updated
	TransactionCount uint64    // Count of ledger entries recorded for this user
}

// NewUser creates a new user with the given ID and initial balance
func NewUser(id uint64, role string, initialBalance int64, timeProvider coreport.TimeProvider) (*User, error) {
	if id == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if initialBalance < 0 {
		return nil, errs.ErrInvalidAmount
	}
	if role == "" {
		role = RoleUser
	}

	now := timeProvider.Now()
	return &User{
		ID:               id,
		Role:             role,
		balance:          initialBalance,
		CreatedAt:        now,
		UpdatedAt:        now,
		TransactionCount: 0,
	}, nil
}

// Balance returns the current credit balance. The balance moves only
// through the ledger store's conditional update, never on the entity.
func (u *User) Balance() int64 {
	return u.balance
}
