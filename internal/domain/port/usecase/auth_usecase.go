package usecase

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// RegisterInput carries a sign-up request
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Role     string // empty means user
}

// LoginInput carries a sign-in request
type LoginInput struct {
	Email    string
	Password string
	Role     string // optional, must match the stored role when set
}

// AuthResult is returned by a successful register or login
type AuthResult struct {
	Token string
	User  *entity.User
}

// AuthUseCase defines account and token operations
type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	ResetPassword(ctx context.Context, email, newPassword string) error

	// Authenticate validates a bearer token and loads the user it names
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
