package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates indexes serving the dashboard aggregates
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	indexes := []struct {
		name string
		sql  string
	}{
		{
			// per-owner sums in the users summary and top users
			name: "idx_expenses_owner_amount",
			sql:  `CREATE INDEX IF NOT EXISTS idx_expenses_owner_amount ON expenses (user_id) INCLUDE (amount) WHERE user_id IS NOT NULL`,
		},
		{
			name: "idx_incomes_owner_amount",
			sql:  `CREATE INDEX IF NOT EXISTS idx_incomes_owner_amount ON incomes (user_id) INCLUDE (amount) WHERE user_id IS NOT NULL`,
		},
		{
			// monthly activity scans a trailing window of creation times
			name: "idx_expenses_created_at_brin",
			sql:  `CREATE INDEX IF NOT EXISTS idx_expenses_created_at_brin ON expenses USING BRIN (created_at) WITH (pages_per_range = 32)`,
		},
		{
			name: "idx_incomes_created_at_brin",
			sql:  `CREATE INDEX IF NOT EXISTS idx_incomes_created_at_brin ON incomes USING BRIN (created_at) WITH (pages_per_range = 32)`,
		},
		{
			name: "idx_users_email_lower",
			sql:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower ON users (LOWER(email))`,
		},
	}

	db := m.db.WithContext(ctx)
	for _, idx := range indexes {
		if err := db.Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies optional planner settings. Failures are logged only.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	db := m.db.WithContext(ctx)

	if err := db.Exec(`ALTER TABLE expenses ALTER COLUMN category SET STATISTICS 500`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for expenses.category", map[string]any{
			"error": err.Error(),
		})
	}

	for _, table := range []string{"users", "incomes", "expenses"} {
		if err := db.Exec("ANALYZE " + table).Error; err != nil {
			m.logger.Warn("Failed to analyze table", map[string]any{
				"table": table,
				"error": err.Error(),
			})
		}
	}
}
