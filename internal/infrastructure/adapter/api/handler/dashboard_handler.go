package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the user dashboard and the admin reports
type DashboardHandler struct {
	dashboard usecase.DashboardUseCase
	logger    coreport.Logger
}

// NewDashboardHandler creates a new dashboard handler instance
func NewDashboardHandler(dashboard usecase.DashboardUseCase, logger coreport.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		logger:    logger,
	}
}

// Balance handles GET /api/dashboard for the caller
func (h *DashboardHandler) Balance(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	summary, err := h.dashboard.UserBalance(c.Request.Context(), user.ID)
	if err != nil {
		respond(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBalanceResponse(summary))
}

// Stats handles GET /api/admin/dashboard-stats. It always answers 200.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats := h.dashboard.DashboardStats(c.Request.Context())
	c.JSON(http.StatusOK, dto.NewDashboardStatsResponse(stats))
}

// UsersSummary handles GET /api/admin/users-summary
func (h *DashboardHandler) UsersSummary(c *gin.Context) {
	rows, err := h.dashboard.UsersSummary(c.Request.Context())
	if err != nil {
		respond(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUsersSummaryResponse(rows))
}

// UserTransactions handles GET /api/admin/user-transactions/:userId.
// Unknown ids report zero totals.
func (h *DashboardHandler) UserTransactions(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		badRequest(c, domainerr.CodeInvalidUserID, "Invalid user ID format")
		return
	}

	totals, err := h.dashboard.UserTotals(c.Request.Context(), userID)
	if err != nil {
		respond(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserTotalsResponse(totals))
}
