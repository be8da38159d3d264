package middleware

import (
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Client-facing messages of the access middlewares
const (
	MsgNoToken      = "No token, authorization denied"
	MsgInvalidToken = "Token is not valid"
	MsgAdminOnly    = "Access denied. Admin only."
)

const userKey = "user"

// Auth requires a valid bearer token and stores the user it names
func Auth(auth usecase.AuthUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeUnauthorized,
				Message: MsgNoToken,
			})
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if domainerr.IsUnauthorizedError(err) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
					Code:    domainerr.CodeInvalidToken,
					Message: MsgInvalidToken,
				})
				return
			}

			logger.Error("Failed to authenticate request", map[string]any{
				"error":      err.Error(),
				"request_id": GetRequestID(c),
			})
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "Internal server error",
			})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// AdminOnly lets through users whose stored role is admin. It must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.CodeForbidden,
				Message: MsgAdminOnly,
			})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user stored by Auth
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	value, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok && user != nil
}
