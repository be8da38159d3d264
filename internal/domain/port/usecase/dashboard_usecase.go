package usecase

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// DashboardUseCase defines read-only aggregations over users and records
type DashboardUseCase interface {
	// UserBalance returns income, expense and their difference for one owner
	UserBalance(ctx context.Context, ownerID uint64) (entity.BalanceSummary, error)

	// UsersSummary lists every user once with their totals, ordered by ID
	UsersSummary(ctx context.Context) ([]entity.UserSummary, error)

	// DashboardStats never fails; failed sections fall back to empty values
	DashboardStats(ctx context.Context) entity.DashboardStats

	// UserTotals returns the totals of any user ID, existing or not
	UserTotals(ctx context.Context, userID uint64) (entity.UserTotals, error)
}
