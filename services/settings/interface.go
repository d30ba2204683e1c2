package settings

import (
	"context"

	settingsRepo "growlytics/database/repository/settings"
	"growlytics/models"
	"growlytics/services/stream"
)

// SettingsService manages the per-user settings singleton.
type SettingsService interface {
	// Get returns the stored settings, or the defaults when none exist.
	Get(ctx context.Context, userID string) (*models.UserSettings, error)
	Save(ctx context.Context, userID string, settings models.UserSettings) (*models.UserSettings, error)
}

// DefaultSettingsService is the production implementation.
type DefaultSettingsService struct {
	Repo settingsRepo.SettingsRepository
	Hub  *stream.Hub
}
