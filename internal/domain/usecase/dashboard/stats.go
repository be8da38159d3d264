package dashboard

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	"golang.org/x/sync/errgroup"
)

// DashboardStats gathers every dashboard section concurrently. A failed section
// is logged and left at its empty value; the call itself never fails.
func (d *DashboardUseCase) DashboardStats(ctx context.Context) (stats entity.DashboardStats) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Dashboard stats aborted", map[string]any{
				"panic": fmt.Sprint(r),
			})
			stats = entity.EmptyDashboardStats()
		}
	}()

	now := d.timeProvider.Now().UTC()
	stats = entity.EmptyDashboardStats()

	var g errgroup.Group

	g.Go(d.guard("totalUsers", func() error {
		count, err := d.userRepo.Count(ctx)
		if err != nil {
			return err
		}
		stats.TotalUsers = count
		return nil
	}))

	g.Go(d.guard("activeUsers", func() error {
		count, err := d.userRepo.CountActiveSince(ctx, now.Add(-d.options.ActiveWindow.Std()))
		if err != nil {
			return err
		}
		stats.ActiveUsers = count
		return nil
	}))

	g.Go(d.guard("totals", func() error {
		incomeCount, err := d.recordRepo.Count(ctx, entity.KindIncome)
		if err != nil {
			return err
		}
		expenseCount, err := d.recordRepo.Count(ctx, entity.KindExpense)
		if err != nil {
			return err
		}
		revenue, err := d.recordRepo.Sum(ctx, entity.KindIncome)
		if err != nil {
			return err
		}
		spent, err := d.recordRepo.Sum(ctx, entity.KindExpense)
		if err != nil {
			return err
		}
		stats.TotalTransactions = incomeCount + expenseCount
		stats.TotalRevenueCents = revenue
		stats.TotalExpenseCents = spent
		return nil
	}))

	g.Go(d.guard("monthlyActivity", func() error {
		activity, err := d.monthlyActivity(ctx, now)
		if err != nil {
			return err
		}
		stats.MonthlyActivity = activity
		return nil
	}))

	g.Go(d.guard("categoryDistribution", func() error {
		categories, err := d.recordRepo.CountByCategory(ctx, entity.KindExpense)
		if err != nil {
			return err
		}
		if len(categories) == 0 {
			categories = entity.DefaultCategoryDistribution()
		}
		stats.CategoryDistribution = categories
		return nil
	}))

	g.Go(d.guard("topUsers", func() error {
		top, err := d.recordRepo.TopOwners(ctx, entity.KindExpense, d.options.TopUsersLimit)
		if err != nil {
			return err
		}
		for i := range top {
			top[i].AvgCents = entity.AverageCents(top[i].ExpenseCents, top[i].Transactions)
		}
		if top == nil {
			top = []entity.TopUser{}
		}
		stats.TopUsers = top
		return nil
	}))

	// guarded sections never return an error
	_ = g.Wait()

	return stats
}

// guard runs one section, logging its error or panic instead of propagating it
func (d *DashboardUseCase) guard(section string, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
			if err != nil {
				d.logger.Warn("Dashboard section failed, using default", map[string]any{
					"section": section,
					"error":   err.Error(),
				})
			}
			err = nil
		}()
		return fn()
	}
}
