package dashboard

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// Month window modes
const (
	// WindowRolling covers the six calendar months ending with the current one
	WindowRolling = "rolling"
	// WindowFixed always reports Jan..Jun, bucketed by month name
	WindowFixed = "fixed"
)

// Defaults applied when Options leaves a field unset
const (
	DefaultTopUsersLimit = 5
	DefaultActiveWindow  = 30 * coreport.Day
)

// Options tune the admin dashboard
type Options struct {
	MonthWindow        string
	UniqueMonthlyUsers bool
	ActiveWindow       coreport.Duration
	TopUsersLimit      int
}

func (o Options) withDefaults() Options {
	if o.MonthWindow != WindowFixed {
		o.MonthWindow = WindowRolling
	}
	if o.ActiveWindow <= 0 {
		o.ActiveWindow = DefaultActiveWindow
	}
	if o.TopUsersLimit <= 0 {
		o.TopUsersLimit = DefaultTopUsersLimit
	}
	return o
}

// DashboardUseCase computes read-only aggregations over users and records
type DashboardUseCase struct {
	userRepo     persistence.UserRepository
	recordRepo   persistence.RecordRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	options      Options
}

// NewDashboardUseCase creates a new dashboard use case instance
func NewDashboardUseCase(
	userRepo persistence.UserRepository,
	recordRepo persistence.RecordRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	options Options,
) usecase.DashboardUseCase {
	return &DashboardUseCase{
		userRepo:     userRepo,
		recordRepo:   recordRepo,
		timeProvider: timeProvider,
		logger:       logger,
		options:      options.withDefaults(),
	}
}

// UserBalance returns income, expense and balance of one owner
func (d *DashboardUseCase) UserBalance(ctx context.Context, ownerID uint64) (entity.BalanceSummary, error) {
	totals, err := d.UserTotals(ctx, ownerID)
	if err != nil {
		return entity.BalanceSummary{}, err
	}
	return entity.NewBalanceSummary(totals.IncomeCents, totals.ExpenseCents), nil
}

// UserTotals sums the records of any user ID. Unknown users yield zeros.
func (d *DashboardUseCase) UserTotals(ctx context.Context, userID uint64) (entity.UserTotals, error) {
	income, err := d.recordRepo.SumByOwner(ctx, entity.KindIncome, userID)
	if err != nil {
		d.logger.Error("Failed to sum income", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return entity.UserTotals{}, err
	}

	expense, err := d.recordRepo.SumByOwner(ctx, entity.KindExpense, userID)
	if err != nil {
		d.logger.Error("Failed to sum expenses", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return entity.UserTotals{}, err
	}

	return entity.UserTotals{IncomeCents: income, ExpenseCents: expense}, nil
}

// UsersSummary lists every user exactly once with their totals
func (d *DashboardUseCase) UsersSummary(ctx context.Context) ([]entity.UserSummary, error) {
	users, err := d.userRepo.List(ctx)
	if err != nil {
		d.logger.Error("Failed to list users", map[string]any{"error": err.Error()})
		return nil, err
	}

	incomeByOwner, err := d.recordRepo.SumsGroupedByOwner(ctx, entity.KindIncome)
	if err != nil {
		d.logger.Error("Failed to group income", map[string]any{"error": err.Error()})
		return nil, err
	}

	expenseByOwner, err := d.recordRepo.SumsGroupedByOwner(ctx, entity.KindExpense)
	if err != nil {
		d.logger.Error("Failed to group expenses", map[string]any{"error": err.Error()})
		return nil, err
	}

	summary := make([]entity.UserSummary, 0, len(users))
	for _, user := range users {
		summary = append(summary, entity.UserSummary{
			ID:           user.ID,
			Name:         user.FullName,
			Email:        user.Email,
			IncomeCents:  incomeByOwner[user.ID],
			ExpenseCents: expenseByOwner[user.ID],
		})
	}
	return summary, nil
}
