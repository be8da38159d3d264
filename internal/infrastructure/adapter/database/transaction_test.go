package database

import (
	"testing"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork(t *testing.T) {
	tdb := NewTestDBManager(t, logger.NewNoopLogger())
	uow := tdb.Manager.CreateUnitOfWork()

	newUser := func(t *testing.T, email string) *entity.User {
		user, err := entity.NewUser("Tx User", email, "hash", entity.RoleUser, tdb.TimeProvider)
		require.NoError(t, err)
		return user
	}

	t.Run("commit persists writes", func(t *testing.T) {
		ctx, err := uow.Begin(t.Context())
		require.NoError(t, err)

		user := newUser(t, "commit@example.com")
		require.NoError(t, uow.GetUserRepository(ctx).Create(ctx, user))

		record, err := entity.NewRecord(entity.KindIncome, user.ID, "Salary", 5000, entity.TruncateToDay(tdb.TimeProvider.Now()), tdb.TimeProvider)
		require.NoError(t, err)
		require.NoError(t, uow.GetRecordRepository(ctx).Create(ctx, record))

		require.NoError(t, uow.Commit(ctx))
		// finished transactions roll back quietly
		assert.NoError(t, uow.Rollback(ctx))

		stored, err := tdb.Manager.UserRepository().GetByEmail(t.Context(), "commit@example.com")
		require.NoError(t, err)
		total, err := tdb.Manager.RecordRepository().SumByOwner(t.Context(), entity.KindIncome, stored.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), total)
	})

	t.Run("rollback discards writes", func(t *testing.T) {
		ctx, err := uow.Begin(t.Context())
		require.NoError(t, err)

		require.NoError(t, uow.GetUserRepository(ctx).Create(ctx, newUser(t, "rollback@example.com")))
		require.NoError(t, uow.Rollback(ctx))

		_, err = tdb.Manager.UserRepository().GetByEmail(t.Context(), "rollback@example.com")
		assert.Error(t, err)
	})

	t.Run("commit without transaction", func(t *testing.T) {
		assert.Error(t, uow.Commit(t.Context()))
		assert.Error(t, uow.Rollback(t.Context()))
	})
}
