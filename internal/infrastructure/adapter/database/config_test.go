package database

import (
	"testing"
	"time"

	appconfig "github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("postgres", func(t *testing.T) {
		cfg, err := NewConfig(appconfig.DatabaseConfig{
			Driver:       DriverPostgres,
			Host:         "db",
			Port:         "6543",
			Username:     "app",
			Password:     "pw",
			Database:     "expenses",
			SSLMode:      "require",
			MaxOpenConns: 20,
			QueryTimeout: 3 * time.Second,
		}, "warn")
		require.NoError(t, err)

		assert.Equal(t, 6543, cfg.Port)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "host=db port=6543 user=app password=pw dbname=expenses sslmode=require", cfg.DSN())
		assert.False(t, cfg.InMemory())
	})

	t.Run("sqlite ignores port", func(t *testing.T) {
		cfg, err := NewConfig(appconfig.DatabaseConfig{Driver: DriverSQLite, Path: ":memory:", Port: "not-a-port"}, "silent")
		require.NoError(t, err)

		assert.True(t, cfg.InMemory())
		assert.Equal(t, ":memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.DSN())
	})

	t.Run("invalid port", func(t *testing.T) {
		_, err := NewConfig(appconfig.DatabaseConfig{Driver: DriverPostgres, Host: "db", Port: "99999"}, "")
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		return Config{Driver: DriverPostgres, Host: "h", Port: 5432, Username: "u", Database: "d", SSLMode: "disable"}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid postgres", mutate: func(c *Config) {}},
		{name: "missing host", mutate: func(c *Config) { c.Host = "" }, wantErr: "host"},
		{name: "bad port", mutate: func(c *Config) { c.Port = 0 }, wantErr: "port"},
		{name: "missing user", mutate: func(c *Config) { c.Username = "" }, wantErr: "username"},
		{name: "missing database", mutate: func(c *Config) { c.Database = "" }, wantErr: "name"},
		{name: "bad ssl mode", mutate: func(c *Config) { c.SSLMode = "sometimes" }, wantErr: "SSL"},
		{name: "sqlite without path", mutate: func(c *Config) { c.Driver = DriverSQLite; c.Path = "" }, wantErr: "path"},
		{name: "unknown driver", mutate: func(c *Config) { c.Driver = "mysql" }, wantErr: "mysql"},
		{name: "negative pool", mutate: func(c *Config) { c.MaxOpenConns = -1 }, wantErr: "pool"},
		{name: "negative retries", mutate: func(c *Config) { c.RetryAttempts = -1 }, wantErr: "retry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParsePort(t *testing.T) {
	port, err := ParsePort("")
	require.NoError(t, err)
	assert.Equal(t, 5432, port)

	port, err = ParsePort("15432")
	require.NoError(t, err)
	assert.Equal(t, 15432, port)

	_, err = ParsePort("abc")
	assert.Error(t, err)
}
