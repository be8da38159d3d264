package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

var deletedMessages = map[entity.RecordKind]string{
	entity.KindIncome:  "Income deleted",
	entity.KindExpense: "Expense deleted",
}

// RecordHandler serves /api/transactions/{income,expense}. Every operation
// is scoped to the authenticated caller.
type RecordHandler struct {
	records usecase.RecordUseCase
	logger  coreport.Logger
}

// NewRecordHandler creates a new record handler instance
func NewRecordHandler(records usecase.RecordUseCase, logger coreport.Logger) *RecordHandler {
	return &RecordHandler{
		records: records,
		logger:  logger,
	}
}

// List returns the caller's records of kind
func (h *RecordHandler) List(kind entity.RecordKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		records, err := h.records.ListRecords(c.Request.Context(), kind, user.ID)
		if err != nil {
			respond(c, h.logger, err)
			return
		}

		c.JSON(http.StatusOK, dto.NewRecordListResponse(records))
	}
}

// Add stores a record of kind for the caller
func (h *RecordHandler) Add(kind entity.RecordKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RecordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, domainerr.CodeValidation, "Invalid request format")
			return
		}

		user, _ := middleware.CurrentUser(c)
		record, err := h.records.AddRecord(c.Request.Context(), kind, user.ID, usecase.RecordInput{
			Category: req.Category,
			Amount:   string(req.Amount),
			Date:     req.Date,
		})
		if err != nil {
			respond(c, h.logger, err)
			return
		}

		c.JSON(http.StatusOK, dto.NewRecordResponse(record))
	}
}

// Delete removes one of the caller's records. Missing or foreign ids succeed too.
func (h *RecordHandler) Delete(kind entity.RecordKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			badRequest(c, domainerr.CodeValidation, "Invalid record ID format")
			return
		}

		user, _ := middleware.CurrentUser(c)
		if err := h.records.DeleteRecord(c.Request.Context(), kind, user.ID, id); err != nil {
			respond(c, h.logger, err)
			return
		}

		c.JSON(http.StatusOK, dto.MessageResponse{Message: deletedMessages[kind]})
	}
}
