package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"growlytics/config"
	"growlytics/database"
	plantRepoPkg "growlytics/database/repository/plant"
	reminderRepoPkg "growlytics/database/repository/reminder"
	settingsRepoPkg "growlytics/database/repository/settings"
	taskRepoPkg "growlytics/database/repository/task"
	userRepoPkg "growlytics/database/repository/user"
	"growlytics/handlers"
	"growlytics/middleware"
	"growlytics/routes"
	"growlytics/services/export"
	"growlytics/services/notification"
	plantSvc "growlytics/services/plant"
	reminderSvc "growlytics/services/reminder"
	settingsSvc "growlytics/services/settings"
	"growlytics/services/storage"
	"growlytics/services/stream"
	taskSvc "growlytics/services/task"
	"growlytics/services/user"
	"growlytics/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.InitStreamClient()
	utils.FirebaseInit()

	cld, err := utils.Cloudinary()
	if err != nil {
		// Photo uploads are the only feature behind cloudinary; boot
		// without them rather than refusing to start.
		logger.Sugar().Warnf("main: cloudinary unavailable, photo uploads disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	plantRepo := plantRepoPkg.NewMongoPlantRepo()
	reminderRepo := reminderRepoPkg.NewMongoReminderRepo()
	taskRepo := taskRepoPkg.NewMongoTaskRepo()
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	hub := stream.NewHub(utils.GetStreamClient())

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}

	notificationService := &notification.DefaultNotificationService{
		Users:    userRepo,
		Settings: settingsRepo,
	}

	plantService := &plantSvc.DefaultPlantService{
		Repo:      plantRepo,
		Reminders: reminderRepo,
		Tasks:     taskRepo,
		Hub:       hub,
	}
	reminderService := &reminderSvc.DefaultReminderService{
		Repo:   reminderRepo,
		Plants: plantRepo,
		Tasks:  taskRepo,
		Hub:    hub,
	}
	taskService := &taskSvc.DefaultTaskService{
		Repo:      taskRepo,
		Reminders: reminderRepo,
		Hub:       hub,
		Notifier:  notificationService,
	}
	settingsService := &settingsSvc.DefaultSettingsService{
		Repo: settingsRepo,
		Hub:  hub,
	}
	exportService := &export.DefaultExportService{
		Plants:    plantRepo,
		Reminders: reminderRepo,
		Tasks:     taskRepo,
		Settings:  settingsRepo,
		Hub:       hub,
	}

	var storageService storage.StorageService
	if cld != nil {
		storageService = storage.NewStorageService(cld,
			config.AppConfig.CloudinaryCloudName, config.AppConfig.CloudinaryAPISecret)
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Plants:    plantService,
		Reminders: reminderService,
		Tasks:     taskService,
		Settings:  settingsService,
		Users:     userService,
		Export:    exportService,
		Storage:   storageService,
		Hub:       hub,

		PlantRepo:    plantRepo,
		ReminderRepo: reminderRepo,
		TaskRepo:     taskRepo,
		SettingsRepo: settingsRepo,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
