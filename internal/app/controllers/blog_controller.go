package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devkip/clubhub/internal/app/models/dto"
	"github.com/devkip/clubhub/internal/app/services"
	"github.com/devkip/clubhub/internal/middleware"
)

// BlogController handles blog and moderation endpoints
type BlogController struct {
	blogService services.BlogService
	logger      zerolog.Logger
}

// NewBlogController creates a new BlogController
func NewBlogController(blogService services.BlogService, logger zerolog.Logger) *BlogController {
	return &BlogController{
		blogService: blogService,
		logger:      logger,
	}
}

// List returns the public blog feed
// @Summary List published posts
// @Description Returns approved posts only, newest first
// @Tags blogs
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.BlogListResponse}
// @Router /blogs [get]
func (c *BlogController) List(ctx *gin.Context) {
	posts, err := c.blogService.ListPublic(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.BlogListResponse{Blogs: posts, Count: len(posts)}))
}

// ListAll returns every post for the moderation dashboard
// @Summary List all posts (admin)
// @Description Returns posts of every moderation status
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.BlogListResponse}
// @Failure 403 {object} dto.ErrorResponse "Not an admin"
// @Router /admin/blogs [get]
func (c *BlogController) ListAll(ctx *gin.Context) {
	posts, err := c.blogService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.BlogListResponse{Blogs: posts, Count: len(posts)}))
}

// Submit queues a member article for moderation
// @Summary Submit an article
// @Description The article enters the moderation queue as pending
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitArticleRequest true "Article"
// @Success 201 {object} dto.APIResponse{data=models.BlogPost}
// @Router /blogs/submit [post]
func (c *BlogController) Submit(ctx *gin.Context) {
	var req dto.SubmitArticleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	email, _ := middleware.CurrentEmail(ctx)

	post, err := c.blogService.Submit(ctx.Request.Context(), userID, email, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(post))
}

// Create publishes an admin-authored post immediately
// @Summary Create a post (admin)
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBlogRequest true "Post"
// @Success 201 {object} dto.APIResponse{data=models.BlogPost}
// @Router /admin/blogs [post]
func (c *BlogController) Create(ctx *gin.Context) {
	var req dto.CreateBlogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	post, err := c.blogService.CreateApproved(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(post))
}

// Approve publishes a pending article
// @Summary Approve a post (admin)
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post id"
// @Success 200 {object} dto.APIResponse{data=models.BlogPost}
// @Failure 404 {object} dto.ErrorResponse "Unknown post"
// @Router /admin/blogs/{id}/approve [post]
func (c *BlogController) Approve(ctx *gin.Context) {
	post, err := c.blogService.Approve(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}

// Reject pulls an article out of the publication queue
// @Summary Reject a post (admin)
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post id"
// @Success 200 {object} dto.APIResponse{data=models.BlogPost}
// @Failure 404 {object} dto.ErrorResponse "Unknown post"
// @Router /admin/blogs/{id}/reject [post]
func (c *BlogController) Reject(ctx *gin.Context) {
	post, err := c.blogService.Reject(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}

// Update edits a post
// @Summary Update a post (admin)
// @Description Omitted fields keep their stored values; omitting status keeps the moderation state
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post id"
// @Param request body dto.UpdateBlogRequest true "Partial edits"
// @Success 200 {object} dto.APIResponse{data=models.BlogPost}
// @Router /admin/blogs/{id} [put]
func (c *BlogController) Update(ctx *gin.Context) {
	var req dto.UpdateBlogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	post, err := c.blogService.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}

// Delete removes a post
// @Summary Delete a post (admin)
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post id"
// @Success 200 {object} dto.APIResponse
// @Router /admin/blogs/{id} [delete]
func (c *BlogController) Delete(ctx *gin.Context) {
	if err := c.blogService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Blog post deleted"))
}
