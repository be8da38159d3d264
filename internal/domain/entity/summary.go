package entity

// All values below are derived on demand and never persisted. Money is in cents.

// BalanceSummary is the per-user balance shown on the user dashboard
type BalanceSummary struct {
	BalanceCents int64
	IncomeCents  int64
	ExpenseCents int64
}

// NewBalanceSummary computes the balance from income and expense totals
func NewBalanceSummary(incomeCents, expenseCents int64) BalanceSummary {
	return BalanceSummary{
		BalanceCents: incomeCents - expenseCents,
		IncomeCents:  incomeCents,
		ExpenseCents: expenseCents,
	}
}

// UserTotals holds the income and expense sums of one user
type UserTotals struct {
	IncomeCents  int64
	ExpenseCents int64
}

// UserSummary is one row of the admin users summary
type UserSummary struct {
	ID           uint64
	Name         string
	Email        string
	IncomeCents  int64
	ExpenseCents int64
}

// MonthlyActivity is one point of the six-month activity series
type MonthlyActivity struct {
	Month        string
	Users        int64
	Transactions int64
}

// CategoryCount is the number of expense records in a category
type CategoryCount struct {
	Label string
	Value int64
}

// TopUser ranks a user by total expenses
type TopUser struct {
	UserID       uint64
	Name         string
	ExpenseCents int64
	Transactions int64
	AvgCents     int64
}

// DashboardStats is the admin dashboard payload
type DashboardStats struct {
	TotalUsers           int64
	ActiveUsers          int64
	TotalTransactions    int64
	TotalRevenueCents    int64
	TotalExpenseCents    int64
	MonthlyActivity      []MonthlyActivity
	CategoryDistribution []CategoryCount
	TopUsers             []TopUser
}

// MonthsInActivityWindow is the length of the monthly activity series
const MonthsInActivityWindow = 6

// DefaultCategories is shown when no expense has a category yet
var DefaultCategories = []string{"Food", "Transport", "Entertainment", "Shopping", "Other"}

// DefaultCategoryDistribution returns the zero-valued fallback distribution
func DefaultCategoryDistribution() []CategoryCount {
	out := make([]CategoryCount, 0, len(DefaultCategories))
	for _, label := range DefaultCategories {
		out = append(out, CategoryCount{Label: label})
	}
	return out
}

// FixedMonthLabels are the literal labels used by the fixed window mode
var FixedMonthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// EmptyDashboardStats is the fully zeroed payload with empty, non-nil slices
func EmptyDashboardStats() DashboardStats {
	return DashboardStats{
		MonthlyActivity:      []MonthlyActivity{},
		CategoryDistribution: []CategoryCount{},
		TopUsers:             []TopUser{},
	}
}
