package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// Login checks credentials, and the role when one is requested
func (a *AuthUseCase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthResult, error) {
	email := entity.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, errs.NewValidationError("", MsgCredentialsRequired)
	}

	user, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			a.logger.Warn("Login for unknown email", map[string]any{
				"email": email,
			})
			return nil, errs.NewAuthError(email, MsgUserNotFound, errs.ErrInvalidCredentials)
		}
		return nil, err
	}

	if err := a.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		a.logger.Warn("Login with wrong password", map[string]any{
			"userId": user.ID,
		})
		return nil, errs.NewAuthError(email, MsgWrongPassword, errs.ErrWrongPassword)
	}

	if !isBlank(input.Role) && !roleMatches(input.Role, user.Role) {
		a.logger.Warn("Login role mismatch", map[string]any{
			"userId":    user.ID,
			"requested": input.Role,
			"actual":    string(user.Role),
		})
		return nil, errs.NewAuthError(email, MsgRoleMismatch, errs.ErrRoleMismatch)
	}

	now := a.timeProvider.Now()
	if err := a.userRepo.TouchLastLogin(ctx, user.ID, now); err != nil {
		a.logger.Warn("Failed to record last login", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
	} else {
		user.LastLoginAt = &now
	}

	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	a.logger.Info("User logged in", map[string]any{
		"userId": user.ID,
	})

	return &usecase.AuthResult{Token: token, User: user}, nil
}

// ResetPassword replaces the password of the account with this email
func (a *AuthUseCase) ResetPassword(ctx context.Context, email, newPassword string) error {
	email = entity.NormalizeEmail(email)

	user, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			return errs.NewAuthError(email, MsgResetUserNotFound, errs.ErrUserNotFound)
		}
		return err
	}

	if newPassword == "" {
		return errs.NewValidationError("newPassword", "New password is required")
	}
	if err := checkPasswordLength("newPassword", newPassword); err != nil {
		return err
	}

	hash, err := a.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := a.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		a.logger.Error("Failed to reset password", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return err
	}

	a.logger.Info("Password reset", map[string]any{
		"userId": user.ID,
	})
	return nil
}

// Authenticate resolves a bearer token to its stored user
func (a *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	userID, err := a.tokens.Parse(token)
	if err != nil {
		return nil, errs.NewAuthError("", MsgTokenInvalid, errs.ErrInvalidToken)
	}

	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.NewAuthError("", MsgTokenInvalid, errs.ErrInvalidToken)
		}
		return nil, err
	}
	return user, nil
}

// roleMatches compares a requested role the way registration parses it
func roleMatches(requested string, actual entity.Role) bool {
	role, err := entity.ParseRole(requested)
	return err == nil && role == actual
}
