package migration

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/persistence"
)

// DefaultUser describes an account created outside the HTTP API
type DefaultUser struct {
	FullName string
	Email    string
	Password string
	Role     entity.Role
}

// EnsureUser creates the account unless its email is already registered.
// It reports whether a new account was created.
func EnsureUser(
	ctx context.Context,
	users persistence.UserRepository,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	def DefaultUser,
) (*entity.User, bool, error) {
	existing, err := users.GetByEmail(ctx, entity.NormalizeEmail(def.Email))
	if err == nil {
		logger.Debug("Default user already present", map[string]any{
			"user_id": existing.ID,
		})
		return existing, false, nil
	}
	if !errs.IsUserNotFoundError(err) {
		return nil, false, err
	}

	if def.Password == "" {
		return nil, false, errs.NewValidationError("password", "Password is required")
	}
	hash, err := hasher.Hash(def.Password)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}

	user, err := entity.NewUser(def.FullName, def.Email, hash, def.Role, timeProvider)
	if err != nil {
		return nil, false, err
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, false, err
	}

	logger.Info("Default user created", map[string]any{
		"user_id": user.ID,
		"role":    string(user.Role),
	})
	return user, true, nil
}
