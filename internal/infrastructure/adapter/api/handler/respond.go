package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

const msgInternal = "Internal server error"

// statusFor maps domain errors to HTTP status codes. Credential failures
// answer 400, matching what existing clients expect.
func statusFor(err error) int {
	switch {
	case domainerr.IsValidationError(err),
		domainerr.IsDuplicateUserError(err),
		domainerr.IsCredentialsError(err):
		return http.StatusBadRequest
	case domainerr.IsForbiddenError(err):
		return http.StatusForbidden
	case domainerr.IsUnauthorizedError(err):
		return http.StatusUnauthorized
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with the given status. Server errors never leak details.
func respondError(c *gin.Context, logger coreport.Logger, status int, err error) {
	message, ok := domainerr.PublicMessage(err)
	if !ok {
		message = http.StatusText(status)
	}

	if status >= http.StatusInternalServerError {
		message = msgInternal
		logger.Error("Request failed", map[string]any{
			"path":       c.Request.URL.Path,
			"request_id": middleware.GetRequestID(c),
			"error":      err.Error(),
		})
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respond picks the status from the error itself
func respond(c *gin.Context, logger coreport.Logger, err error) {
	respondError(c, logger, statusFor(err), err)
}

func badRequest(c *gin.Context, code int, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: code, Message: message})
}

// parseID reads a positive integer path parameter
func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
