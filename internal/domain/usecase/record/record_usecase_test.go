package record

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupMocks(t *testing.T, now time.Time) (*persistencemocks.MockRecordRepository, *coremocks.MockTimeProvider, *coremocks.MockLogger) {
	mockRepo := persistencemocks.NewMockRecordRepository(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockLogger := coremocks.NewMockLogger(t)

	mockTime.EXPECT().Now().Return(now).Maybe()
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return mockRepo, mockTime, mockLogger
}

func TestAddRecord(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	t.Run("Income with server date", func(t *testing.T) {
		mockRepo, mockTime, mockLogger := setupMocks(t, now)
		mockRepo.EXPECT().Create(ctx, mock.MatchedBy(func(r *entity.Record) bool {
			return r.Kind == entity.KindIncome && r.AmountCents == 500000 && r.OwnerID == 3 &&
				r.FormattedDate() == "2025-06-10"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Record).ID = 11
		}).Return(nil).Once()

		useCase := NewRecordUseCase(mockRepo, mockTime, mockLogger)
		record, err := useCase.AddRecord(ctx, entity.KindIncome, 3, usecase.RecordInput{Category: "Salary", Amount: "5000"})

		require.NoError(t, err)
		assert.Equal(t, uint64(11), record.ID)
		assert.Equal(t, "Salary", record.Category)
	})

	t.Run("Expense with client date and negative amount", func(t *testing.T) {
		mockRepo, mockTime, mockLogger := setupMocks(t, now)
		mockRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()

		useCase := NewRecordUseCase(mockRepo, mockTime, mockLogger)
		record, err := useCase.AddRecord(ctx, entity.KindExpense, 3, usecase.RecordInput{
			Category: "Refund",
			Amount:   "-12.5",
			Date:     "2025-01-31",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(-1250), record.AmountCents)
		assert.Equal(t, "2025-01-31", record.FormattedDate())
	})

	t.Run("Validation failures", func(t *testing.T) {
		testCases := []struct {
			name  string
			kind  entity.RecordKind
			input usecase.RecordInput
		}{
			{"Missing category", entity.KindIncome, usecase.RecordInput{Amount: "10"}},
			{"Missing amount", entity.KindIncome, usecase.RecordInput{Category: "Salary"}},
			{"Malformed amount", entity.KindExpense, usecase.RecordInput{Category: "Food", Amount: "ten"}},
			{"Too many decimals", entity.KindExpense, usecase.RecordInput{Category: "Food", Amount: "1.005"}},
			{"Malformed date", entity.KindExpense, usecase.RecordInput{Category: "Food", Amount: "1", Date: "yesterday"}},
			{"Unknown kind", entity.RecordKind("loan"), usecase.RecordInput{Category: "Food", Amount: "1"}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				mockRepo, mockTime, mockLogger := setupMocks(t, now)
				useCase := NewRecordUseCase(mockRepo, mockTime, mockLogger)

				record, err := useCase.AddRecord(ctx, tc.kind, 3, tc.input)

				assert.Nil(t, record)
				assert.True(t, errs.IsValidationError(err))
			})
		}
	})

	t.Run("Store failure", func(t *testing.T) {
		mockRepo, mockTime, mockLogger := setupMocks(t, now)
		mockRepo.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDatabaseConnection).Once()

		useCase := NewRecordUseCase(mockRepo, mockTime, mockLogger)
		_, err := useCase.AddRecord(ctx, entity.KindIncome, 3, usecase.RecordInput{Category: "Salary", Amount: "1"})

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestListRecords(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	t.Run("Returns repository order", func(t *testing.T) {
		mockRepo, mockTime, mockLogger := setupMocks(t, now)
		stored := []entity.Record{{ID: 2}, {ID: 1}}
		mockRepo.EXPECT().ListByOwner(ctx, entity.KindExpense, uint64(3)).Return(stored, nil).Once()

		records, err := NewRecordUseCase(mockRepo, mockTime, mockLogger).ListRecords(ctx, entity.KindExpense, 3)

		require.NoError(t, err)
		assert.Equal(t, stored, records)
	})

	t.Run("Empty list is not nil", func(t *testing.T) {
		mockRepo, mockTime, mockLogger := setupMocks(t, now)
		mockRepo.EXPECT().ListByOwner(ctx, entity.KindIncome, uint64(3)).Return(nil, nil).Once()

		records, err := NewRecordUseCase(mockRepo, mockTime, mockLogger).ListRecords(ctx, entity.KindIncome, 3)

		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})
}

func TestDeleteRecord(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	t.Run("Owned record", func(t *testing.T) {
		mockRepo, mockTime, mockLogger := setupMocks(t, now)
		mockRepo.EXPECT().DeleteOwned(ctx, entity.KindIncome, uint64(3), uint64(11)).Return(int64(1), nil).Once()

		err := NewRecordUseCase(mockRepo, mockTime, mockLogger).DeleteRecord(ctx, entity.KindIncome, 3, 11)

		assert.NoError(t, err)
	})

	t.Run("Foreign or missing record still succeeds", func(t *testing.T) {
		mockRepo, mockTime, mockLogger := setupMocks(t, now)
		mockRepo.EXPECT().DeleteOwned(ctx, entity.KindExpense, uint64(4), uint64(11)).Return(int64(0), nil).Twice()

		useCase := NewRecordUseCase(mockRepo, mockTime, mockLogger)

		assert.NoError(t, useCase.DeleteRecord(ctx, entity.KindExpense, 4, 11))
		assert.NoError(t, useCase.DeleteRecord(ctx, entity.KindExpense, 4, 11))
	})

	t.Run("Store failure", func(t *testing.T) {
		mockRepo, mockTime, mockLogger := setupMocks(t, now)
		mockRepo.EXPECT().DeleteOwned(ctx, entity.KindExpense, uint64(4), uint64(11)).Return(int64(0), errors.New("boom")).Once()

		err := NewRecordUseCase(mockRepo, mockTime, mockLogger).DeleteRecord(ctx, entity.KindExpense, 4, 11)

		assert.Error(t, err)
	})
}
