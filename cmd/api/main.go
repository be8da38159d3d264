package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	authUseCase "github.com/amirhossein-jamali/expense-tracker/internal/domain/usecase/auth"
	dashboardUseCase "github.com/amirhossein-jamali/expense-tracker/internal/domain/usecase/dashboard"
	recordUseCase "github.com/amirhossein-jamali/expense-tracker/internal/domain/usecase/record"
	userUseCase "github.com/amirhossein-jamali/expense-tracker/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/security"
	timeProvider "github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:         cfg.Logger.Level,
		Format:        cfg.Logger.Format,
		Output:        cfg.Logger.Output,
		FilePath:      cfg.Logger.FilePath,
		RotationHours: cfg.Logger.RotationHours,
		MaxAgeDays:    cfg.Logger.MaxAgeDays,
		CallerInfo:    cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	for _, warning := range cfg.Warnings() {
		appLogger.Warn("Weak production configuration", map[string]any{"warning": warning})
	}

	tp := timeProvider.NewRealTimeProvider()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbConfig, err := database.NewConfig(cfg.Database, gormLogLevel(cfg.Logger.Level))
	if err != nil {
		appLogger.Error("Invalid database configuration", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	if err := dbManager.Migrate(ctx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)

	if cfg.Seed.Enabled() {
		if err := seedAdmin(ctx, cfg.Seed, dbManager, hasher, appLogger, tp); err != nil {
			appLogger.Error("Failed to seed admin account", map[string]any{"error": err.Error()})
		}
	}

	router, err := buildRouter(cfg, dbManager, hasher, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to build router", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":   server.Addr,
			"env":    cfg.Environment,
			"driver": cfg.Database.Driver,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// buildRouter wires repositories, use cases and handlers into a gin engine
func buildRouter(
	cfg *config.Config,
	dbManager *database.Manager,
	hasher coreport.PasswordHasher,
	appLogger coreport.Logger,
	tp coreport.TimeProvider,
) (*gin.Engine, error) {
	tokens, err := security.NewJWTTokens(security.TokenConfig{
		Secret: cfg.Auth.JWTSecret,
		TTL:    cfg.Auth.TokenTTL,
		NodeID: cfg.Auth.NodeID,
	}, tp)
	if err != nil {
		return nil, fmt.Errorf("create token issuer: %w", err)
	}

	uow := dbManager.CreateUnitOfWork()
	userRepo := dbManager.UserRepository()
	recordRepo := dbManager.RecordRepository()

	auth := authUseCase.NewAuthUseCase(uow, userRepo, hasher, tokens, tp, appLogger, authUseCase.Options{
		AllowAdminSignup: cfg.Auth.AllowAdminSignup,
	})
	profiles := userUseCase.NewProfileUseCase(uow, userRepo, tp, appLogger)
	records := recordUseCase.NewRecordUseCase(recordRepo, tp, appLogger)
	dashboard := dashboardUseCase.NewDashboardUseCase(userRepo, recordRepo, tp, appLogger, dashboardUseCase.Options{
		MonthWindow:        cfg.Dashboard.MonthWindow,
		UniqueMonthlyUsers: cfg.Dashboard.UniqueMonthlyUsers,
		ActiveWindow:       coreport.Duration(cfg.Dashboard.ActiveWindowDays) * coreport.Day,
		TopUsersLimit:      cfg.Dashboard.TopUsersLimit,
	})

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, routes.MiddlewareOptions{
		CORSOrigins:    cfg.Server.CORSOrigins,
		RequestTimeout: dbManager.QueryTimeout(),
	})
	routes.SetupRoutes(router, routes.Handlers{
		Auth:      handler.NewAuthHandler(auth, appLogger),
		Profile:   handler.NewProfileHandler(profiles, appLogger),
		Record:    handler.NewRecordHandler(records, appLogger),
		Dashboard: handler.NewDashboardHandler(dashboard, appLogger),
		Health:    handler.NewHealthHandler(dbManager, appLogger),
	}, auth, appLogger)

	return router, nil
}

// seedAdmin creates the configured admin account once
func seedAdmin(
	ctx context.Context,
	seed config.SeedConfig,
	dbManager *database.Manager,
	hasher coreport.PasswordHasher,
	appLogger coreport.Logger,
	tp coreport.TimeProvider,
) error {
	_, created, err := migration.EnsureUser(ctx, dbManager.UserRepository(), hasher, tp, appLogger, migration.DefaultUser{
		FullName: seed.AdminFullName,
		Email:    seed.AdminEmail,
		Password: seed.AdminPassword,
		Role:     entity.RoleAdmin,
	})
	if err != nil {
		return err
	}
	if created {
		appLogger.Info("Seeded admin account", map[string]any{"email": entity.NormalizeEmail(seed.AdminEmail)})
	}
	return nil
}

// gormLogLevel keeps SQL tracing to debug runs
func gormLogLevel(appLevel string) string {
	switch coreport.ParseLogLevel(appLevel) {
	case coreport.LogLevelDebug:
		return "info"
	case coreport.LogLevelError:
		return "error"
	default:
		return "warn"
	}
}
