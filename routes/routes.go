package routes

import (
	"net/http"
	"time"

	"growlytics/handlers"
	"growlytics/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.AuthMiddleware())
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/fcm-token", hb.UpdateFCMTokenHandler)
		api.DELETE("/account", hb.DeleteAccountHandler)
	}
}

// RegisterPlantRoutes registers plant collection endpoints.
func RegisterPlantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/plants")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("", hb.ListPlantsHandler)
		api.POST("", hb.CreatePlantHandler)
		api.GET("/:id", hb.GetPlantHandler)
		api.PUT("/:id", hb.UpdatePlantHandler)
		api.DELETE("/:id", hb.DeletePlantHandler)
		api.POST("/:id/photo", hb.UploadPlantPhotoHandler)
	}
}

// RegisterReminderRoutes registers care reminder endpoints.
func RegisterReminderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reminders")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("", hb.ListRemindersHandler)
		api.POST("", hb.CreateReminderHandler)
		api.PUT("/:id", hb.UpdateReminderHandler)
		api.DELETE("/:id", hb.DeleteReminderHandler)
	}
}

// RegisterTaskRoutes registers care task endpoints.
func RegisterTaskRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tasks")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("", hb.ListTasksHandler)
		api.POST("", hb.CreateTaskHandler)
		api.POST("/:id/complete", hb.CompleteTaskHandler)
		api.DELETE("/:id", hb.DeleteTaskHandler)
	}
}

// RegisterInsightRoutes registers the derived read endpoints.
func RegisterInsightRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/dashboard", hb.GetDashboardHandler)
		api.GET("/calendar", hb.GetCalendarHandler)
		api.GET("/analytics", hb.GetAnalyticsHandler)
	}
}

// RegisterSettingsRoutes registers settings and data portability endpoints.
func RegisterSettingsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/settings")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("", hb.GetSettingsHandler)
		api.PUT("", hb.SaveSettingsHandler)
		api.GET("/export", hb.ExportDataHandler)
		api.POST("/import", hb.ImportDataHandler)
	}
}

// RegisterStreamRoutes registers the live collection feeds.
func RegisterStreamRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/stream")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/:collection", hb.StreamCollectionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Growlytics"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterPlantRoutes(r, hb)
	RegisterReminderRoutes(r, hb)
	RegisterTaskRoutes(r, hb)
	RegisterInsightRoutes(r, hb)
	RegisterSettingsRoutes(r, hb)
	RegisterStreamRoutes(r, hb)
}
