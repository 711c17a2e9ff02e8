package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	clubauth "github.com/devkip/clubhub/internal/app/auth"
	"github.com/devkip/clubhub/internal/app/models/dto"
	"github.com/devkip/clubhub/internal/app/services"
	"github.com/devkip/clubhub/internal/middleware"
)

// AdminController handles the admin probe and public stats
type AdminController struct {
	allowList    *clubauth.AllowList
	statsService services.StatsService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(allowList *clubauth.AllowList, statsService services.StatsService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		allowList:    allowList,
		statsService: statsService,
		logger:       logger,
	}
}

// Check answers the dashboard's admin probe
// @Summary Check admin status
// @Description Reports whether the caller's email is on the admin allow-list
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AdminCheckResponse}
// @Router /admin/check [get]
func (c *AdminController) Check(ctx *gin.Context) {
	email, _ := middleware.CurrentEmail(ctx)

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.AdminCheckResponse{
		IsAdmin: c.allowList.IsAdmin(email),
		Email:   email,
	}))
}

// MembersCount returns the public member counter
// @Summary Count club members
// @Tags stats
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.MembersCountResponse}
// @Router /stats/members [get]
func (c *AdminController) MembersCount(ctx *gin.Context) {
	count, err := c.statsService.MembersCount(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MembersCountResponse{Count: count}))
}
