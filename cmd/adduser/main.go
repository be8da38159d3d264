package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/security"
	timeProvider "github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/config"

	"golang.org/x/term"
)

const defaultDBPath = "expense-tracker.db"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	name := fs.String("name", "", "Full name")
	email := fs.String("email", "", "Email address")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")
	role := fs.String("role", string(entity.RoleUser), "Role: user or admin")
	driver := fs.String("driver", database.DriverSQLite, "Database driver: sqlite or postgres")
	dbPath := fs.String("db", defaultDBPath, "Path to the sqlite database file")
	cost := fs.Int("cost", 10, "bcrypt cost")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *name == "" || *email == "" {
		fmt.Fprintln(stdout, "Usage: adduser -name <full name> -email <email> [-password <password>] [-role user|admin] [-db <db_path>]")
		fs.PrintDefaults()
		return fmt.Errorf("missing required flags: name, email")
	}

	userRole, err := entity.ParseRole(*role)
	if err != nil {
		return err
	}

	password := *passwordFlag
	if password == "" {
		fmt.Fprint(stdout, "Password: ")
		password, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(stdout)
	}

	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password cannot be empty")
	}

	dbSettings := databaseSettings(*driver, *dbPath)
	dbConfig, err := database.NewConfig(dbSettings, "silent")
	if err != nil {
		return fmt.Errorf("invalid database settings: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	log := logger.NewNoopLogger()
	tp := timeProvider.NewRealTimeProvider()

	dbManager := database.NewManager(dbConfig, log, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = dbManager.Close() }()

	if err := dbManager.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	user, created, err := migration.EnsureUser(ctx, dbManager.UserRepository(), security.NewBcryptHasher(*cost), tp, log, migration.DefaultUser{
		FullName: *name,
		Email:    *email,
		Password: password,
		Role:     userRole,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	if !created {
		return fmt.Errorf("user %s already exists", user.Email)
	}

	fmt.Fprintf(stdout, "User %s created successfully with ID %d (role %s)\n", user.Email, user.ID, user.Role)
	return nil
}

// databaseSettings builds connection settings from flags; postgres reads ET_DB_* variables
func databaseSettings(driver, path string) config.DatabaseConfig {
	settings := config.DatabaseConfig{
		Driver:        driver,
		Path:          path,
		MaxOpenConns:  1,
		MaxIdleConns:  1,
		QueryTimeout:  10 * time.Second,
		RetryAttempts: 1,
	}

	if driver == database.DriverSQLite {
		if env := os.Getenv("ET_DB_PATH"); env != "" && path == defaultDBPath {
			settings.Path = env
		}
		return settings
	}

	settings.Host = os.Getenv("ET_DB_HOST")
	settings.Port = os.Getenv("ET_DB_PORT")
	settings.Username = os.Getenv("ET_DB_USERNAME")
	settings.Password = os.Getenv("ET_DB_PASSWORD")
	settings.Database = os.Getenv("ET_DB_NAME")
	settings.SSLMode = os.Getenv("ET_DB_SSL_MODE")
	if settings.SSLMode == "" {
		settings.SSLMode = "disable"
	}
	return settings
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
