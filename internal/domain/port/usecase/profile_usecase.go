package usecase

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// ProfileInput holds optional profile changes. Empty fields are left untouched.
type ProfileInput struct {
	FullName string
	Email    string
	Avatar   string
}

// ProfileUseCase defines profile reads and edits.
// The actor must be the profile owner or an admin.
type ProfileUseCase interface {
	GetProfile(ctx context.Context, actor *entity.User, id uint64) (*entity.User, error)
	UpdateProfile(ctx context.Context, actor *entity.User, id uint64, input ProfileInput) (*entity.User, error)
}
