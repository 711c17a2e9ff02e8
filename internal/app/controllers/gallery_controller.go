package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devkip/clubhub/internal/app/models/dto"
	"github.com/devkip/clubhub/internal/app/services"
	"github.com/devkip/clubhub/internal/middleware"
)

// GalleryController handles gallery endpoints
type GalleryController struct {
	galleryService services.GalleryService
	logger         zerolog.Logger
}

// NewGalleryController creates a new GalleryController
func NewGalleryController(galleryService services.GalleryService, logger zerolog.Logger) *GalleryController {
	return &GalleryController{
		galleryService: galleryService,
		logger:         logger,
	}
}

// List returns every gallery photo
// @Summary List gallery photos
// @Tags gallery
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.GalleryResponse}
// @Router /gallery [get]
func (c *GalleryController) List(ctx *gin.Context) {
	photos, err := c.galleryService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.GalleryResponse{Photos: photos, Count: len(photos)}))
}

// Add stores a new photo
// @Summary Add a photo (admin)
// @Description Category defaults to "general" when omitted
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddPhotoRequest true "Photo"
// @Success 201 {object} dto.APIResponse{data=models.Photo}
// @Router /admin/gallery [post]
func (c *GalleryController) Add(ctx *gin.Context) {
	var req dto.AddPhotoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	photo, err := c.galleryService.Add(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(photo))
}

// Delete removes a photo
// @Summary Delete a photo (admin)
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path string true "Photo id"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown photo"
// @Router /admin/gallery/{id} [delete]
func (c *GalleryController) Delete(ctx *gin.Context) {
	if err := c.galleryService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Photo deleted"))
}
