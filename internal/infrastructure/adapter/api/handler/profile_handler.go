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

// MsgProfileUpdated confirms a profile edit
const MsgProfileUpdated = "Profile updated successfully"

// ProfileHandler serves /api/users/:id
type ProfileHandler struct {
	profiles usecase.ProfileUseCase
	logger   coreport.Logger
}

// NewProfileHandler creates a new profile handler instance
func NewProfileHandler(profiles usecase.ProfileUseCase, logger coreport.Logger) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		logger:   logger,
	}
}

// GetProfile handles GET /api/users/:id
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		badRequest(c, domainerr.CodeInvalidUserID, "Invalid user ID format")
		return
	}

	actor, _ := middleware.CurrentUser(c)
	user, err := h.profiles.GetProfile(c.Request.Context(), actor, id)
	if err != nil {
		respond(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// UpdateProfile handles PUT /api/users/:id
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		badRequest(c, domainerr.CodeInvalidUserID, "Invalid user ID format")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, domainerr.CodeValidation, "Invalid request format")
		return
	}

	actor, _ := middleware.CurrentUser(c)
	user, err := h.profiles.UpdateProfile(c.Request.Context(), actor, id, usecase.ProfileInput{
		FullName: req.FullName,
		Email:    req.Email,
		Avatar:   req.Avatar,
	})
	if err != nil {
		respond(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileUpdatedResponse{
		Message: MsgProfileUpdated,
		User:    dto.NewUserResponse(user),
	})
}
