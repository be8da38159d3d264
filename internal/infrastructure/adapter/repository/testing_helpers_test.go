package repository

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/model"
	coremocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/core"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var fixedNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:  gormlogger.Discard,
		NowFunc: func() time.Time { return fixedNow },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Income{}, &model.Expense{}))
	return db
}

func newFixedClock(t *testing.T) *coremocks.MockTimeProvider {
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(fixedNow).Maybe()
	return tp
}

func seedUser(t *testing.T, repo *UserRepository, name, email string) *entity.User {
	t.Helper()
	user := &entity.User{
		FullName:     name,
		Email:        email,
		PasswordHash: "hash",
		Role:         entity.RoleUser,
		CreatedAt:    fixedNow,
		UpdatedAt:    fixedNow,
	}
	require.NoError(t, repo.Create(t.Context(), user))
	return user
}

func newRepos(t *testing.T) (*UserRepository, *RecordRepository) {
	db := newTestDB(t)
	log := logger.NewNoopLogger()
	return NewUserRepository(db, newFixedClock(t), log), NewRecordRepository(db, log)
}
