package persistence

import (
	"context"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// Create creates a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If user with same ID already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// ApplyDelta applies a signed credit movement to the user's balance
	// as a single conditional write: the non-negativity check and the
	// mutation are one statement, never a separate read then write.
	// Returns the updated user on success.
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrInsufficientBalance: If the movement would drive the balance below zero
	// - ErrDatabaseConnection: If database connection fails
	ApplyDelta(ctx context.Context, userID uint64, amount int64) (*entity.User, error)
}
