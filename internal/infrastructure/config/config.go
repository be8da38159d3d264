package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Auth        AuthConfig      `mapstructure:"auth"`
	Dashboard   DashboardConfig `mapstructure:"dashboard"`
	Seed        SeedConfig      `mapstructure:"seed"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	CORSOrigins       []string      `mapstructure:"corsOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or sqlite
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	Path            string        `mapstructure:"path"` // sqlite file, ":memory:" allowed
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level         string `mapstructure:"level"`
	Format        string `mapstructure:"format"` // json or console
	Output        string `mapstructure:"output"` // stdout or file
	FilePath      string `mapstructure:"filePath"`
	RotationHours int    `mapstructure:"rotationHours"`
	MaxAgeDays    int    `mapstructure:"maxAgeDays"`
	CallerInfo    bool   `mapstructure:"callerInfo"`
}

// AuthConfig contains token and password hashing settings
type AuthConfig struct {
	JWTSecret        string        `mapstructure:"jwtSecret"`
	TokenTTL         time.Duration `mapstructure:"tokenTTL"` // hours
	BcryptCost       int           `mapstructure:"bcryptCost"`
	NodeID           int64         `mapstructure:"nodeId"`
	AllowAdminSignup bool          `mapstructure:"allowAdminSignup"`
}

// DashboardConfig tunes the admin dashboard aggregation
type DashboardConfig struct {
	MonthWindow        string `mapstructure:"monthWindow"` // rolling or fixed
	UniqueMonthlyUsers bool   `mapstructure:"uniqueMonthlyUsers"`
	ActiveWindowDays   int    `mapstructure:"activeWindowDays"`
	TopUsersLimit      int    `mapstructure:"topUsersLimit"`
}

// SeedConfig optionally describes an admin account created at startup
type SeedConfig struct {
	AdminEmail    string `mapstructure:"adminEmail"`
	AdminPassword string `mapstructure:"adminPassword"`
	AdminFullName string `mapstructure:"adminFullName"`
}

// Enabled reports whether an admin account should be seeded
func (s SeedConfig) Enabled() bool {
	return s.AdminEmail != "" && s.AdminPassword != ""
}
