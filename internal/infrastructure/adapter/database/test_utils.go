package database

import (
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/time"
)

// TestDBManager provides utilities for testing with a migrated in-memory database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestConfig returns a sqlite in-memory configuration
func NewTestConfig() *Config {
	return &Config{
		Driver:        DriverSQLite,
		Path:          ":memory:",
		MaxOpenConns:  1,
		MaxIdleConns:  1,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 1,
	}
}

// NewTestDBManager connects and migrates a fresh in-memory database.
// The connection is closed when the test ends.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	tp := timeprovider.NewRealTimeProvider()
	config := NewTestConfig()
	manager := NewManager(config, logger, tp)

	if _, err := manager.Connect(t.Context()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(t.Context()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: tp,
	}
}

// TruncateAllTables empties the data tables
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	db := m.Manager.DB()
	for _, table := range []string{model.IncomeTable, model.ExpenseTable, "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("Failed to truncate %s: %v", table, err)
		}
	}
}

// CreateTestUser inserts a user row directly and returns its ID
func (m *TestDBManager) CreateTestUser(t *testing.T, fullName, email, role string) uint64 {
	t.Helper()

	now := m.TimeProvider.Now()
	user := model.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: "x",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := m.Manager.DB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user.ID
}
