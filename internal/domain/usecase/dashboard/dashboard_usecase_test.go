package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

type fixture struct {
	userRepo   *persistencemocks.MockUserRepository
	recordRepo *persistencemocks.MockRecordRepository
	time       *coremocks.MockTimeProvider
	logger     *coremocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		userRepo:   persistencemocks.NewMockUserRepository(t),
		recordRepo: persistencemocks.NewMockRecordRepository(t),
		time:       coremocks.NewMockTimeProvider(t),
		logger:     coremocks.NewMockLogger(t),
	}
	f.time.EXPECT().Now().Return(now).Maybe()
	f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return f
}

func (f *fixture) useCase(options Options) usecase.DashboardUseCase {
	return NewDashboardUseCase(f.userRepo, f.recordRepo, f.time, f.logger, options)
}

// expectHealthyStats wires every dashboard query with a consistent data set
func (f *fixture) expectHealthyStats() {
	f.userRepo.EXPECT().Count(mock.Anything).Return(int64(3), nil).Maybe()
	f.userRepo.EXPECT().CountActiveSince(mock.Anything, now.Add(-30*24*time.Hour)).Return(int64(2), nil).Maybe()
	f.recordRepo.EXPECT().Count(mock.Anything, entity.KindIncome).Return(int64(4), nil).Maybe()
	f.recordRepo.EXPECT().Count(mock.Anything, entity.KindExpense).Return(int64(5), nil).Maybe()
	f.recordRepo.EXPECT().Sum(mock.Anything, entity.KindIncome).Return(int64(1000000), nil).Maybe()
	f.recordRepo.EXPECT().Sum(mock.Anything, entity.KindExpense).Return(int64(250000), nil).Maybe()
	f.recordRepo.EXPECT().ActivitySince(mock.Anything, entity.KindIncome, mock.Anything).Return([]persistence.RecordActivity{
		{OwnerID: 1, CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{OwnerID: 1, CreatedAt: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
		{OwnerID: 2, CreatedAt: time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)},
		{OwnerID: 0, CreatedAt: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)},
	}, nil).Maybe()
	f.recordRepo.EXPECT().ActivitySince(mock.Anything, entity.KindExpense, mock.Anything).Return([]persistence.RecordActivity{
		{OwnerID: 1, CreatedAt: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)},
		{OwnerID: 3, CreatedAt: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)},
	}, nil).Maybe()
	f.recordRepo.EXPECT().CountByCategory(mock.Anything, entity.KindExpense).Return([]entity.CategoryCount{
		{Label: "Food", Value: 3},
		{Label: "Rent", Value: 2},
	}, nil).Maybe()
	f.recordRepo.EXPECT().TopOwners(mock.Anything, entity.KindExpense, 5).Return([]entity.TopUser{
		{UserID: 1, Name: "Ann", ExpenseCents: 200000, Transactions: 3},
		{UserID: 3, Name: "Cid", ExpenseCents: 50000, Transactions: 2},
		{UserID: 2, Name: "Bob"},
	}, nil).Maybe()
}

func TestUserBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("Income minus expense", func(t *testing.T) {
		f := newFixture(t)
		f.recordRepo.EXPECT().SumByOwner(ctx, entity.KindIncome, uint64(1)).Return(int64(500000), nil).Once()
		f.recordRepo.EXPECT().SumByOwner(ctx, entity.KindExpense, uint64(1)).Return(int64(150000), nil).Once()

		balance, err := f.useCase(Options{}).UserBalance(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, entity.BalanceSummary{BalanceCents: 350000, IncomeCents: 500000, ExpenseCents: 150000}, balance)
	})

	t.Run("No records", func(t *testing.T) {
		f := newFixture(t)
		f.recordRepo.EXPECT().SumByOwner(ctx, mock.Anything, uint64(2)).Return(int64(0), nil).Twice()

		balance, err := f.useCase(Options{}).UserBalance(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, entity.BalanceSummary{}, balance)
	})

	t.Run("Store failure propagates", func(t *testing.T) {
		f := newFixture(t)
		f.recordRepo.EXPECT().SumByOwner(ctx, entity.KindIncome, uint64(1)).Return(int64(0), errors.New("boom")).Once()

		_, err := f.useCase(Options{}).UserBalance(ctx, 1)

		assert.Error(t, err)
	})
}

func TestUsersSummary(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.userRepo.EXPECT().List(ctx).Return([]entity.User{
		{ID: 1, FullName: "Ann", Email: "ann@example.com"},
		{ID: 2, FullName: "Bob", Email: "bob@example.com"},
	}, nil).Once()
	f.recordRepo.EXPECT().SumsGroupedByOwner(ctx, entity.KindIncome).Return(map[uint64]int64{1: 500000}, nil).Once()
	f.recordRepo.EXPECT().SumsGroupedByOwner(ctx, entity.KindExpense).Return(map[uint64]int64{1: 150000, 9: 100}, nil).Once()

	summary, err := f.useCase(Options{}).UsersSummary(ctx)

	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, entity.UserSummary{ID: 1, Name: "Ann", Email: "ann@example.com", IncomeCents: 500000, ExpenseCents: 150000}, summary[0])
	assert.Equal(t, entity.UserSummary{ID: 2, Name: "Bob", Email: "bob@example.com"}, summary[1])
}

func TestUserTotals(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.recordRepo.EXPECT().SumByOwner(ctx, entity.KindIncome, uint64(404)).Return(int64(0), nil).Once()
	f.recordRepo.EXPECT().SumByOwner(ctx, entity.KindExpense, uint64(404)).Return(int64(0), nil).Once()

	totals, err := f.useCase(Options{}).UserTotals(ctx, 404)

	require.NoError(t, err)
	assert.Equal(t, entity.UserTotals{}, totals)
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()

	t.Run("All sections", func(t *testing.T) {
		f := newFixture(t)
		f.expectHealthyStats()

		stats := f.useCase(Options{}).DashboardStats(ctx)

		assert.Equal(t, int64(3), stats.TotalUsers)
		assert.Equal(t, int64(2), stats.ActiveUsers)
		assert.Equal(t, int64(9), stats.TotalTransactions)
		assert.Equal(t, int64(1000000), stats.TotalRevenueCents)
		assert.Equal(t, int64(250000), stats.TotalExpenseCents)

		assert.Equal(t, []entity.MonthlyActivity{
			{Month: "Oct"},
			{Month: "Nov"},
			{Month: "Dec", Users: 1, Transactions: 1},
			{Month: "Jan", Users: 0, Transactions: 1},
			{Month: "Feb"},
			{Month: "Mar", Users: 3, Transactions: 4},
		}, stats.MonthlyActivity)

		assert.Equal(t, []entity.CategoryCount{{Label: "Food", Value: 3}, {Label: "Rent", Value: 2}}, stats.CategoryDistribution)

		require.Len(t, stats.TopUsers, 3)
		assert.Equal(t, int64(66667), stats.TopUsers[0].AvgCents)
		assert.Equal(t, int64(25000), stats.TopUsers[1].AvgCents)
		assert.Equal(t, int64(0), stats.TopUsers[2].AvgCents)
	})

	t.Run("Unique monthly users", func(t *testing.T) {
		f := newFixture(t)
		f.expectHealthyStats()

		stats := f.useCase(Options{UniqueMonthlyUsers: true}).DashboardStats(ctx)

		assert.Equal(t, int64(2), stats.MonthlyActivity[5].Users)
		assert.Equal(t, int64(4), stats.MonthlyActivity[5].Transactions)
	})

	t.Run("Fixed month labels", func(t *testing.T) {
		f := newFixture(t)
		f.expectHealthyStats()

		stats := f.useCase(Options{MonthWindow: WindowFixed}).DashboardStats(ctx)

		require.Len(t, stats.MonthlyActivity, 6)
		labels := make([]string, 0, 6)
		for _, point := range stats.MonthlyActivity {
			labels = append(labels, point.Month)
		}
		assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}, labels)
		assert.Equal(t, int64(1), stats.MonthlyActivity[0].Transactions)
		assert.Equal(t, int64(4), stats.MonthlyActivity[2].Transactions)
		assert.Equal(t, int64(0), stats.MonthlyActivity[3].Transactions)
	})

	t.Run("Rolling window starts at the first of the month", func(t *testing.T) {
		f := newFixture(t)
		f.expectHealthyStats()
		start := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)

		f.useCase(Options{}).DashboardStats(ctx)

		f.recordRepo.AssertCalled(t, "ActivitySince", mock.Anything, entity.KindIncome, start)
		f.recordRepo.AssertCalled(t, "ActivitySince", mock.Anything, entity.KindExpense, start)
	})

	t.Run("Empty categories use the fallback list", func(t *testing.T) {
		f := newFixture(t)
		f.recordRepo.EXPECT().CountByCategory(mock.Anything, entity.KindExpense).Return([]entity.CategoryCount{}, nil).Once()
		f.expectHealthyStats()

		stats := f.useCase(Options{}).DashboardStats(ctx)

		assert.Equal(t, entity.DefaultCategoryDistribution(), stats.CategoryDistribution)
	})

	t.Run("Failing section keeps the others", func(t *testing.T) {
		f := newFixture(t)
		f.recordRepo.EXPECT().TopOwners(mock.Anything, entity.KindExpense, 5).Return(nil, errors.New("join failed")).Once()
		f.expectHealthyStats()

		stats := f.useCase(Options{}).DashboardStats(ctx)

		assert.NotNil(t, stats.TopUsers)
		assert.Empty(t, stats.TopUsers)
		assert.Equal(t, int64(3), stats.TotalUsers)
		assert.Equal(t, int64(9), stats.TotalTransactions)
		assert.Len(t, stats.MonthlyActivity, 6)
	})

	t.Run("Totals fail together", func(t *testing.T) {
		f := newFixture(t)
		f.recordRepo.EXPECT().Sum(mock.Anything, entity.KindExpense).Return(int64(0), errors.New("timeout")).Once()
		f.expectHealthyStats()

		stats := f.useCase(Options{}).DashboardStats(ctx)

		assert.Equal(t, int64(0), stats.TotalTransactions)
		assert.Equal(t, int64(0), stats.TotalRevenueCents)
		assert.Equal(t, int64(0), stats.TotalExpenseCents)
		assert.Equal(t, int64(3), stats.TotalUsers)
	})

	t.Run("Panicking section is contained", func(t *testing.T) {
		f := newFixture(t)
		f.userRepo.EXPECT().Count(mock.Anything).Panic("driver bug").Once()
		f.expectHealthyStats()

		stats := f.useCase(Options{}).DashboardStats(ctx)

		assert.Equal(t, int64(0), stats.TotalUsers)
		assert.Equal(t, int64(2), stats.ActiveUsers)
	})

	t.Run("Repeated calls are stable", func(t *testing.T) {
		f := newFixture(t)
		f.expectHealthyStats()
		useCase := f.useCase(Options{})

		assert.Equal(t, useCase.DashboardStats(ctx), useCase.DashboardStats(ctx))
	})

	t.Run("Every section failing yields the empty shape", func(t *testing.T) {
		f := newFixture(t)
		boom := errors.New("down")
		f.userRepo.EXPECT().Count(mock.Anything).Return(int64(0), boom)
		f.userRepo.EXPECT().CountActiveSince(mock.Anything, mock.Anything).Return(int64(0), boom)
		f.recordRepo.EXPECT().Count(mock.Anything, mock.Anything).Return(int64(0), boom)
		f.recordRepo.EXPECT().ActivitySince(mock.Anything, mock.Anything, mock.Anything).Return(nil, boom)
		f.recordRepo.EXPECT().CountByCategory(mock.Anything, mock.Anything).Return(nil, boom)
		f.recordRepo.EXPECT().TopOwners(mock.Anything, mock.Anything, mock.Anything).Return(nil, boom)

		stats := f.useCase(Options{}).DashboardStats(ctx)

		assert.Equal(t, entity.EmptyDashboardStats(), stats)
	})
}
