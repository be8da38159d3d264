package migration

import (
	"testing"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/security"
	persistencemocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnsureUser(t *testing.T) {
	admin := DefaultUser{
		FullName: "Administrator",
		Email:    "Admin@Example.com",
		Password: "admin123",
		Role:     entity.RoleAdmin,
	}

	t.Run("creates once", func(t *testing.T) {
		db := newTestDB(t)
		tp := newFixedClock(t)
		log := logger.NewNoopLogger()
		require.NoError(t, NewMigrationManager(db, log, tp).MigrateAll(t.Context()))

		users := repository.NewUserRepository(db, tp, log)
		hasher := security.NewBcryptHasher(4)

		created, isNew, err := EnsureUser(t.Context(), users, hasher, tp, log, admin)
		require.NoError(t, err)
		assert.True(t, isNew)
		assert.Equal(t, "admin@example.com", created.Email)
		assert.True(t, created.IsAdmin())
		assert.NoError(t, hasher.Compare(created.PasswordHash, "admin123"))

		again, isNew, err := EnsureUser(t.Context(), users, hasher, tp, log, admin)
		require.NoError(t, err)
		assert.False(t, isNew)
		assert.Equal(t, created.ID, again.ID)

		n, err := users.Count(t.Context())
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("blank password", func(t *testing.T) {
		users := persistencemocks.NewMockUserRepository(t)
		users.EXPECT().GetByEmail(mock.Anything, "admin@example.com").Return(nil, errs.ErrUserNotFound)

		noPassword := admin
		noPassword.Password = ""
		_, _, err := EnsureUser(t.Context(), users, security.NewBcryptHasher(4), newFixedClock(t), logger.NewNoopLogger(), noPassword)
		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("lookup failure is returned", func(t *testing.T) {
		users := persistencemocks.NewMockUserRepository(t)
		users.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(nil, errs.ErrDatabaseConnection)

		_, _, err := EnsureUser(t.Context(), users, security.NewBcryptHasher(4), newFixedClock(t), logger.NewNoopLogger(), admin)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
