package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devkip/clubhub/internal/app/models/dto"
	"github.com/devkip/clubhub/internal/app/services"
	"github.com/devkip/clubhub/internal/middleware"
)

// ProfileController handles member profile endpoints
type ProfileController struct {
	profileService services.ProfileService
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		logger:         logger,
	}
}

// Get returns the caller's profile
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Profile}
// @Failure 404 {object} dto.ErrorResponse "Profile not created yet"
// @Router /profile [get]
func (c *ProfileController) Get(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	profile, err := c.profileService.Get(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// Update edits the caller's profile
// @Summary Update own profile
// @Description Email and student id in the payload are ignored; the stored values are kept
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile edits"
// @Success 200 {object} dto.APIResponse{data=models.Profile}
// @Router /profile [put]
func (c *ProfileController) Update(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)

	profile, err := c.profileService.Update(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}
