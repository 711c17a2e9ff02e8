package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devkip/clubhub/internal/app/controllers"
	"github.com/devkip/clubhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	blogController *controllers.BlogController,
	eventController *controllers.EventController,
	galleryController *controllers.GalleryController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/google", authController.GoogleLogin)
		auth.GET("/google/callback", authController.GoogleCallback)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
		auth.GET("/verify-email", authController.VerifyEmail)
		auth.POST("/resend-verification", authController.ResendVerification)
		auth.POST("/forgot-password", authController.ForgotPassword)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	v1.GET("/blogs", blogController.List)
	v1.GET("/events", eventController.List)
	v1.GET("/events/:id", eventController.Get)
	v1.GET("/gallery", galleryController.List)
	v1.GET("/stats/members", adminController.MembersCount)

	// Auth is optional here: anonymous callers get isRegistered:false
	v1.GET("/events/:id/registration", authMiddleware.OptionalJWTAuth(), eventController.CheckRegistration)

	// --- Authenticated member routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/profile", profileController.Get)
		authenticated.PUT("/profile", profileController.Update)
		authenticated.POST("/blogs/submit", blogController.Submit)
		authenticated.POST("/events/:id/register", eventController.Register)
		authenticated.GET("/admin/check", adminController.Check)
	}

	// --- Admin routes, gated by the allow-list ---
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.AdminRequired())
	{
		admin.GET("/blogs", blogController.ListAll)
		admin.POST("/blogs", blogController.Create)
		admin.POST("/blogs/:id/approve", blogController.Approve)
		admin.POST("/blogs/:id/reject", blogController.Reject)
		admin.PUT("/blogs/:id", blogController.Update)
		admin.DELETE("/blogs/:id", blogController.Delete)

		admin.POST("/events", eventController.Create)
		admin.PUT("/events/:id", eventController.Update)
		admin.DELETE("/events/:id", eventController.Delete)
		admin.GET("/events/:id/registrations", eventController.ListRegistrations)

		admin.POST("/gallery", galleryController.Add)
		admin.DELETE("/gallery/:id", galleryController.Delete)
	}
}
