package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursepass/internal/app/controllers"
	"github.com/yigit/coursepass/internal/app/models/dto"
	"github.com/yigit/coursepass/internal/middleware"
)

// Controllers groups the HTTP handlers mounted by SetupRouter
type Controllers struct {
	Auth    *controllers.AuthController
	Content *controllers.ContentController
	Admin   *controllers.AdminController
}

// SetupRouter configures all application routes. redeemLimiter may be nil,
// which leaves code redemption unlimited.
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	authMiddleware *middleware.AuthMiddleware,
	redeemLimiter *middleware.RateLimiter,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})

	api := router.Group("/api")

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		validate := []gin.HandlerFunc{ctrl.Auth.Validate}
		if redeemLimiter != nil {
			validate = append([]gin.HandlerFunc{middleware.RateLimitMiddleware(redeemLimiter)}, validate...)
		}
		auth.POST("/validate", validate...)
		auth.GET("/session", ctrl.Auth.Session)
		auth.POST("/logout", ctrl.Auth.Logout)
	}

	// --- Session-protected content routes ---
	content := api.Group("/content")
	content.Use(authMiddleware.SessionAuth())
	{
		content.GET("/lessons", ctrl.Content.GetLessons)
		content.GET("/flashcards", ctrl.Content.GetFlashcards)
		content.GET("/tests", ctrl.Content.GetTests)
		content.GET("/tests/:id/generate", ctrl.Content.GenerateTest)
		content.GET("/questions", ctrl.Content.GetQuestions)
	}

	// --- Admin routes (HTTP Basic) ---
	admin := api.Group("/admin")
	admin.Use(authMiddleware.AdminBasicAuth())
	{
		admin.GET("/access-codes", ctrl.Admin.ListAccessCodes)
		admin.POST("/access-codes", middleware.ValidateRequest[dto.CreateAccessCodeRequest](), ctrl.Admin.CreateAccessCode)
		admin.PATCH("/access-codes/:id", middleware.ValidateRequest[dto.UpdateAccessCodeRequest](), ctrl.Admin.UpdateAccessCode)
	}
}
