package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "ET"

// ErrMissingConfig is returned when required settings are absent
var ErrMissingConfig = errors.New("missing required configuration")

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration for the environment named by ET_ENV
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}
	return Load(getEnvironment(), ConfigPaths)
}

// Load reads configs/<env>.yaml from the first matching path, applies
// defaults and ET_ overrides, then validates the result
func Load(env string, paths []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	var lastError error
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.corsOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.path", "expense-tracker.db")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.filePath", "logs/expense-tracker.log")
	v.SetDefault("logger.rotationHours", 24)
	v.SetDefault("logger.maxAgeDays", 7)
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("auth.tokenTTL", 720) // hours
	v.SetDefault("auth.bcryptCost", 10)
	v.SetDefault("auth.nodeId", 1)
	v.SetDefault("auth.allowAdminSignup", true)

	v.SetDefault("dashboard.monthWindow", "rolling")
	v.SetDefault("dashboard.uniqueMonthlyUsers", false)
	v.SetDefault("dashboard.activeWindowDays", 30)
	v.SetDefault("dashboard.topUsersLimit", 5)

	v.SetDefault("seed.adminFullName", "Administrator")
}

// getEnvironment determines the environment from ET_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides lets short environment names override file values
func processEnvOverrides(v *viper.Viper) {
	strOverrides := map[string]string{
		"ET_DB_DRIVER":           "database.driver",
		"ET_DB_HOST":             "database.host",
		"ET_DB_PORT":             "database.port",
		"ET_DB_USERNAME":         "database.username",
		"ET_DB_PASSWORD":         "database.password",
		"ET_DB_NAME":             "database.database",
		"ET_DB_SSL_MODE":         "database.sslMode",
		"ET_DB_PATH":             "database.path",
		"ET_SERVER_HOST":         "server.host",
		"ET_LOGGER_LEVEL":        "logger.level",
		"ET_LOGGER_OUTPUT":       "logger.output",
		"ET_JWT_SECRET":          "auth.jwtSecret",
		"ET_SEED_ADMIN_EMAIL":    "seed.adminEmail",
		"ET_SEED_ADMIN_PASSWORD": "seed.adminPassword",
	}
	for name, key := range strOverrides {
		if val := os.Getenv(name); val != "" {
			v.Set(key, val)
		}
	}

	if port := getEnvInt("ET_SERVER_PORT", 0); port > 0 {
		v.Set("server.port", port)
	}
	if maxOpenConns := getEnvInt("ET_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("ET_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if queryTimeout := getEnvInt("ET_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}
	if ttl := getEnvInt("ET_TOKEN_TTL_HOURS", 0); ttl > 0 {
		v.Set("auth.tokenTTL", ttl)
	}
	if signup := os.Getenv("ET_ALLOW_ADMIN_SIGNUP"); signup != "" {
		if allow, err := strconv.ParseBool(signup); err == nil {
			v.Set("auth.allowAdminSignup", allow)
		}
	}
}

// getEnvInt reads an environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Hour
}

// Validate reports every missing required key at once
func (c *Config) Validate() error {
	var missing []string

	if c.Server.Port <= 0 {
		missing = append(missing, "server.port")
	}
	if c.Auth.JWTSecret == "" {
		missing = append(missing, "auth.jwtSecret")
	}

	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" {
			missing = append(missing, "database.host")
		}
		if c.Database.Username == "" {
			missing = append(missing, "database.username")
		}
		if c.Database.Database == "" {
			missing = append(missing, "database.database")
		}
	case "sqlite":
		if c.Database.Path == "" {
			missing = append(missing, "database.path")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	switch c.Dashboard.MonthWindow {
	case "rolling", "fixed":
	default:
		return fmt.Errorf("dashboard.monthWindow must be rolling or fixed, got %q", c.Dashboard.MonthWindow)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}
	return nil
}

// Warnings lists weak settings that are tolerated but should not reach production
func (c *Config) Warnings() []string {
	if c.Environment != Production {
		return nil
	}

	var warnings []string
	if c.Database.Driver == "postgres" && c.Database.SSLMode == "disable" {
		warnings = append(warnings, "database.sslMode is disabled")
	}
	if len(c.Auth.JWTSecret) < 32 {
		warnings = append(warnings, "auth.jwtSecret is shorter than 32 characters")
	}
	if c.Server.ReadTimeout < 5*time.Second || c.Server.WriteTimeout < 5*time.Second {
		warnings = append(warnings, "server timeouts are shorter than 5 seconds")
	}
	if c.Auth.AllowAdminSignup {
		warnings = append(warnings, "auth.allowAdminSignup is enabled")
	}
	return warnings
}
