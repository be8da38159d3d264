package auth

import (
	"strings"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// Client-facing messages
const (
	MsgUserExists             = "User already exists"
	MsgRegistrationIncomplete = "Full name, email and password are required"
	MsgCredentialsRequired    = "Email and password are required"
	MsgUserNotFound           = "Invalid credentials (user not found)"
	MsgWrongPassword          = "Invalid credentials (wrong password)"
	MsgRoleMismatch           = "Role mismatch"
	MsgResetUserNotFound      = "User not found with this email"
	MsgAdminSignupDisabled    = "Admin registration is disabled"
	MsgTokenInvalid           = "Token is not valid"
	MsgPasswordTooLong        = "Password must be at most 72 bytes"
)

// MaxPasswordBytes is the longest password bcrypt can hash
const MaxPasswordBytes = 72

// Options tune account policies
type Options struct {
	// AllowAdminSignup permits self-registration with the admin role
	AllowAdminSignup bool
}

// AuthUseCase implements registration, login and token checks
type AuthUseCase struct {
	uow          persistence.UnitOfWork
	userRepo     persistence.UserRepository
	hasher       coreport.PasswordHasher
	tokens       coreport.TokenIssuer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	options      Options
}

// NewAuthUseCase creates a new auth use case instance
func NewAuthUseCase(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	hasher coreport.PasswordHasher,
	tokens coreport.TokenIssuer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	options Options,
) usecase.AuthUseCase {
	return &AuthUseCase{
		uow:          uow,
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		timeProvider: timeProvider,
		logger:       logger,
		options:      options,
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func checkPasswordLength(field, password string) error {
	if len(password) > MaxPasswordBytes {
		return errs.NewValidationError(field, MsgPasswordTooLong)
	}
	return nil
}
