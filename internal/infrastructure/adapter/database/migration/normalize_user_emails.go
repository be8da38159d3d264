package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"gorm.io/gorm"
)

// NormalizeUserEmails upgrades a 1.0.0 schema, where emails were stored as
// typed and roles could be blank, to the 1.1.0 rules
type NormalizeUserEmails struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewNormalizeUserEmails creates a new migration instance
func NewNormalizeUserEmails(db *gorm.DB, logger coreport.Logger) *NormalizeUserEmails {
	return &NormalizeUserEmails{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration inside one transaction. AutoMigrate has
// already added any missing columns by the time it runs.
func (m *NormalizeUserEmails) Run(ctx context.Context) error {
	m.logger.Info("Normalizing user emails and roles", nil)

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		emails := tx.Exec(`UPDATE users SET email = LOWER(TRIM(email)) WHERE email <> LOWER(TRIM(email))`)
		if emails.Error != nil {
			m.logger.Error("Failed to normalize emails", map[string]any{"error": emails.Error.Error()})
			return emails.Error
		}

		roles := tx.Exec(`UPDATE users SET role = 'user' WHERE role IS NULL OR role = ''`)
		if roles.Error != nil {
			m.logger.Error("Failed to backfill roles", map[string]any{"error": roles.Error.Error()})
			return roles.Error
		}

		m.logger.Info("User rows normalized", map[string]any{
			"emails": emails.RowsAffected,
			"roles":  roles.RowsAffected,
		})
		return nil
	})
}
