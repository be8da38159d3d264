package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// UserRepository defines methods to interact with user accounts
type UserRepository interface {
	// Create stores a new user and fills in its generated ID
	//
	// Possible errors:
	// - ErrDuplicateUser: If the email is already registered
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by normalized email
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has this email
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update saves the profile fields of an existing user
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDuplicateUser: If the new email belongs to another user
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the stored password hash
	UpdatePassword(ctx context.Context, id uint64, passwordHash string) error

	// TouchLastLogin records a successful login time
	TouchLastLogin(ctx context.Context, id uint64, at time.Time) error

	// List returns every user ordered by ID ascending
	List(ctx context.Context) ([]entity.User, error)

	// Count returns the number of users
	Count(ctx context.Context) (int64, error)

	// CountActiveSince counts users whose last login is at or after since
	CountActiveSince(ctx context.Context, since time.Time) (int64, error)
}
