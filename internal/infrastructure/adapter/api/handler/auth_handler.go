package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// MsgPasswordReset confirms a password reset
const MsgPasswordReset = "Password reset successful"

// AuthHandler handles sign-up, sign-in and password reset
type AuthHandler struct {
	auth   usecase.AuthUseCase
	logger coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(auth usecase.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	h.register(c, "")
}

// AdminRegister handles POST /api/admin/register; the role is always admin
func (h *AuthHandler) AdminRegister(c *gin.Context) {
	h.register(c, entity.RoleAdmin)
}

func (h *AuthHandler) register(c *gin.Context, forcedRole entity.Role) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, domainerr.CodeValidation, "Invalid request format")
		return
	}
	if forcedRole != "" {
		req.Role = string(forcedRole)
	}

	result, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respond(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token: result.Token,
		User:  dto.NewUserResponse(result.User),
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	h.login(c, "")
}

// AdminLogin handles POST /api/admin/login; only admin accounts may sign in
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	h.login(c, entity.RoleAdmin)
}

func (h *AuthHandler) login(c *gin.Context, forcedRole entity.Role) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, domainerr.CodeValidation, "Invalid request format")
		return
	}
	if forcedRole != "" {
		req.Role = string(forcedRole)
	}

	result, err := h.auth.Login(c.Request.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respond(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: result.Token,
		User:  dto.NewUserResponse(result.User),
	})
}

// ResetPassword handles POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, domainerr.CodeValidation, "Invalid request format")
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), req.Email, req.NewPassword); err != nil {
		status := statusFor(err)
		if domainerr.IsUserNotFoundError(err) {
			// an unknown email answers 400 on reset
			status = http.StatusBadRequest
		}
		respondError(c, h.logger, status, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: MsgPasswordReset})
}
