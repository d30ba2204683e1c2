package notification

import (
	"context"

	settingsRepo "growlytics/database/repository/settings"
	userRepo "growlytics/database/repository/user"
	"growlytics/models"
)

// NotificationService sends best-effort FCM pushes. Every method is
// fire-and-forget from the caller's point of view; delivery problems are
// logged and never propagated.
type NotificationService interface {
	// NotifyTasksDue tells the user that new care tasks appeared.
	NotifyTasksDue(ctx context.Context, userID string, created []models.Task)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users    userRepo.UserRepository
	Settings settingsRepo.SettingsRepository
}
