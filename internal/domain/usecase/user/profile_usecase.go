package user

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// Client-facing messages
const (
	MsgUserNotFound   = "User not found"
	MsgEmailInUse     = "Email already in use"
	MsgNotYourProfile = "Access denied"
)

// ProfileUseCase implements profile reads and edits
type ProfileUseCase struct {
	uow          persistence.UnitOfWork
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewProfileUseCase creates a new profile use case instance
func NewProfileUseCase(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.ProfileUseCase {
	return &ProfileUseCase{
		uow:          uow,
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// authorize allows the profile owner and admins
func authorize(actor *entity.User, id uint64) error {
	if actor == nil {
		return errs.NewAuthError("", "No token, authorization denied", errs.ErrUnauthorized)
	}
	if actor.ID != id && !actor.IsAdmin() {
		return errs.NewAuthError(actor.Email, MsgNotYourProfile, errs.ErrForbidden)
	}
	return nil
}

// GetProfile returns the user with the given ID
func (p *ProfileUseCase) GetProfile(ctx context.Context, actor *entity.User, id uint64) (*entity.User, error) {
	if err := authorize(actor, id); err != nil {
		return nil, err
	}

	user, err := p.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.NewAuthError("", MsgUserNotFound, errs.ErrUserNotFound)
		}
		p.logger.Error("Failed to get user", map[string]any{
			"userId": id,
			"error":  err.Error(),
		})
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies the non-empty fields of input to the stored profile
func (p *ProfileUseCase) UpdateProfile(
	ctx context.Context,
	actor *entity.User,
	id uint64,
	input usecase.ProfileInput,
) (*entity.User, error) {
	if err := authorize(actor, id); err != nil {
		return nil, err
	}

	txCtx, err := p.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := p.uow.Rollback(txCtx); rbErr != nil {
			p.logger.Warn("Failed to roll back profile update", map[string]any{
				"userId": id,
				"error":  rbErr.Error(),
			})
		}
	}()

	repo := p.uow.GetUserRepository(txCtx)

	user, err := repo.GetByID(txCtx, id)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.NewAuthError("", MsgUserNotFound, errs.ErrUserNotFound)
		}
		return nil, err
	}

	if email := entity.NormalizeEmail(input.Email); email != "" && email != user.Email {
		other, err := repo.GetByEmail(txCtx, email)
		switch {
		case err == nil && other.ID != user.ID:
			return nil, errs.NewValidationErrorWrap("email", MsgEmailInUse, errs.ErrDuplicateUser)
		case err != nil && !errs.IsUserNotFoundError(err):
			return nil, err
		}
	}

	if !user.ApplyProfile(input.FullName, input.Email, input.Avatar, p.timeProvider) {
		if err := p.uow.Commit(txCtx); err != nil {
			return nil, err
		}
		committed = true
		return user, nil
	}

	if err := repo.Update(txCtx, user); err != nil {
		if errs.IsDuplicateUserError(err) {
			return nil, errs.NewValidationErrorWrap("email", MsgEmailInUse, errs.ErrDuplicateUser)
		}
		p.logger.Error("Failed to update profile", map[string]any{
			"userId": id,
			"error":  err.Error(),
		})
		return nil, err
	}

	if err := p.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	committed = true

	p.logger.Info("Profile updated", map[string]any{
		"userId":  id,
		"actorId": actor.ID,
	})
	return user, nil
}
