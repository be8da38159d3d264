package dto

import "github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"

// BalanceResponse is the per-user dashboard
type BalanceResponse struct {
	Balance float64 `json:"balance"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// UserTotalsResponse holds one user's income and expense totals
type UserTotalsResponse struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// UserSummaryResponse is one row of the admin users summary
type UserSummaryResponse struct {
	ID      uint64  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// MonthlyActivityResponse is one month of the activity series
type MonthlyActivityResponse struct {
	Month        string `json:"month"`
	Users        int64  `json:"users"`
	Transactions int64  `json:"transactions"`
}

// CategoryCountResponse is one slice of the category chart
type CategoryCountResponse struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// TopUserResponse ranks a user by spending
type TopUserResponse struct {
	Name         string  `json:"name"`
	Expenses     float64 `json:"expenses"`
	Transactions int64   `json:"transactions"`
	AvgAmount    float64 `json:"avgAmount"`
}

// DashboardStatsResponse is the admin dashboard payload
type DashboardStatsResponse struct {
	TotalUsers           int64                     `json:"totalUsers"`
	ActiveUsers          int64                     `json:"activeUsers"`
	TotalTransactions    int64                     `json:"totalTransactions"`
	TotalRevenue         float64                   `json:"totalRevenue"`
	TotalExpense         float64                   `json:"totalExpense"`
	MonthlyActivity      []MonthlyActivityResponse `json:"monthlyActivity"`
	CategoryDistribution []CategoryCountResponse   `json:"categoryDistribution"`
	TopUsers             []TopUserResponse         `json:"topUsers"`
}

// NewBalanceResponse converts cents to decimal amounts
func NewBalanceResponse(s entity.BalanceSummary) BalanceResponse {
	return BalanceResponse{
		Balance: entity.CentsToFloat(s.BalanceCents),
		Income:  entity.CentsToFloat(s.IncomeCents),
		Expense: entity.CentsToFloat(s.ExpenseCents),
	}
}

// NewUserTotalsResponse converts one user's totals to decimal amounts
func NewUserTotalsResponse(t entity.UserTotals) UserTotalsResponse {
	return UserTotalsResponse{
		Income:  entity.CentsToFloat(t.IncomeCents),
		Expense: entity.CentsToFloat(t.ExpenseCents),
	}
}

// NewUsersSummaryResponse maps every summary row, returning [] when there are none
func NewUsersSummaryResponse(rows []entity.UserSummary) []UserSummaryResponse {
	out := make([]UserSummaryResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, UserSummaryResponse{
			ID:      row.ID,
			Name:    row.Name,
			Email:   row.Email,
			Income:  entity.CentsToFloat(row.IncomeCents),
			Expense: entity.CentsToFloat(row.ExpenseCents),
		})
	}
	return out
}

// NewDashboardStatsResponse maps the stats, rendering empty sections as [] rather than null
func NewDashboardStatsResponse(s entity.DashboardStats) DashboardStatsResponse {
	resp := DashboardStatsResponse{
		TotalUsers:           s.TotalUsers,
		ActiveUsers:          s.ActiveUsers,
		TotalTransactions:    s.TotalTransactions,
		TotalRevenue:         entity.CentsToFloat(s.TotalRevenueCents),
		TotalExpense:         entity.CentsToFloat(s.TotalExpenseCents),
		MonthlyActivity:      make([]MonthlyActivityResponse, 0, len(s.MonthlyActivity)),
		CategoryDistribution: make([]CategoryCountResponse, 0, len(s.CategoryDistribution)),
		TopUsers:             make([]TopUserResponse, 0, len(s.TopUsers)),
	}
	for _, m := range s.MonthlyActivity {
		resp.MonthlyActivity = append(resp.MonthlyActivity, MonthlyActivityResponse{
			Month:        m.Month,
			Users:        m.Users,
			Transactions: m.Transactions,
		})
	}
	for _, c := range s.CategoryDistribution {
		resp.CategoryDistribution = append(resp.CategoryDistribution, CategoryCountResponse{
			Label: c.Label,
			Value: c.Value,
		})
	}
	for _, u := range s.TopUsers {
		resp.TopUsers = append(resp.TopUsers, TopUserResponse{
			Name:         u.Name,
			Expenses:     entity.CentsToFloat(u.ExpenseCents),
			Transactions: u.Transactions,
			AvgAmount:    entity.CentsToFloat(u.AvgCents),
		})
	}
	return resp
}
