package auth

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// Register creates an account and signs a token for it.
// The email check and the insert share one unit of work.
func (a *AuthUseCase) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthResult, error) {
	email := entity.NormalizeEmail(input.Email)
	if isBlank(input.FullName) || email == "" || input.Password == "" {
		return nil, errs.NewValidationError("", MsgRegistrationIncomplete)
	}
	if err := checkPasswordLength("password", input.Password); err != nil {
		return nil, err
	}

	role, err := entity.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}
	if role == entity.RoleAdmin && !a.options.AllowAdminSignup {
		return nil, errs.NewAuthError(email, MsgAdminSignupDisabled, errs.ErrForbidden)
	}

	hash, err := a.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := entity.NewUser(input.FullName, email, hash, role, a.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := a.createInTransaction(ctx, user); err != nil {
		if errs.IsDuplicateUserError(err) {
			a.logger.Info("Registration rejected, email taken", map[string]any{
				"email": email,
			})
			return nil, errs.NewAuthError(email, MsgUserExists, errs.ErrDuplicateUser)
		}
		a.logger.Error("Failed to register user", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}

	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	a.logger.Info("User registered", map[string]any{
		"userId": user.ID,
		"role":   string(user.Role),
	})

	return &usecase.AuthResult{Token: token, User: user}, nil
}

func (a *AuthUseCase) createInTransaction(ctx context.Context, user *entity.User) error {
	txCtx, err := a.uow.Begin(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := a.uow.Rollback(txCtx); rbErr != nil {
			a.logger.Warn("Failed to roll back registration", map[string]any{
				"error": rbErr.Error(),
			})
		}
	}()

	repo := a.uow.GetUserRepository(txCtx)

	_, err = repo.GetByEmail(txCtx, user.Email)
	switch {
	case err == nil:
		return errs.ErrDuplicateUser
	case !errs.IsUserNotFoundError(err):
		return err
	}

	if err := repo.Create(txCtx, user); err != nil {
		return err
	}

	if err := a.uow.Commit(txCtx); err != nil {
		return err
	}
	committed = true
	return nil
}
