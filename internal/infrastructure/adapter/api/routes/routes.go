package routes

import (
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Auth      *handler.AuthHandler
	Profile   *handler.ProfileHandler
	Record    *handler.RecordHandler
	Dashboard *handler.DashboardHandler
	Health    *handler.HealthHandler
}

// MiddlewareOptions configures the global middleware chain
type MiddlewareOptions struct {
	CORSOrigins    []string
	RequestTimeout time.Duration
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, auth usecase.AuthUseCase, logger coreport.Logger) {
	router.GET("/", h.Health.Root)
	router.GET("/healthz", h.Health.Healthz)

	requireAuth := middleware.Auth(auth, logger)

	api := router.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", h.Auth.Register)
		authRoutes.POST("/login", h.Auth.Login)
		authRoutes.POST("/reset-password", h.Auth.ResetPassword)
	}

	userRoutes := api.Group("/users", requireAuth)
	{
		userRoutes.GET("/:id", h.Profile.GetProfile)
		userRoutes.PUT("/:id", h.Profile.UpdateProfile)
	}

	transactionRoutes := api.Group("/transactions", requireAuth)
	for _, kind := range []entity.RecordKind{entity.KindIncome, entity.KindExpense} {
		path := "/" + string(kind)
		transactionRoutes.GET(path, h.Record.List(kind))
		transactionRoutes.POST(path, h.Record.Add(kind))
		transactionRoutes.DELETE(path+"/:id", h.Record.Delete(kind))
	}

	api.GET("/dashboard", requireAuth, h.Dashboard.Balance)

	adminRoutes := api.Group("/admin")
	{
		adminRoutes.POST("/register", h.Auth.AdminRegister)
		adminRoutes.POST("/login", h.Auth.AdminLogin)

		reports := adminRoutes.Group("", requireAuth, middleware.AdminOnly())
		reports.GET("/dashboard-stats", h.Dashboard.Stats)
		reports.GET("/users-summary", h.Dashboard.UsersSummary)
		reports.GET("/user-transactions/:userId", h.Dashboard.UserTransactions)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, opts MiddlewareOptions) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(opts.CORSOrigins))
	router.Use(middleware.Timeout(timeProvider, opts.RequestTimeout))
}
