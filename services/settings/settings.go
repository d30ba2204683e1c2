package settings

import (
	"context"

	"growlytics/models"
	"growlytics/services/stream"
	"growlytics/utils"

	"go.uber.org/zap"
)

func (s *DefaultSettingsService) Get(ctx context.Context, userID string) (*models.UserSettings, error) {
	stored, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		defaults := models.DefaultSettings(userID)
		return &defaults, nil
	}
	return stored, nil
}

func (s *DefaultSettingsService) Save(ctx context.Context, userID string, settings models.UserSettings) (*models.UserSettings, error) {
	switch settings.Preferences.Theme {
	case "light", "dark", "system":
	default:
		return nil, models.ValidationError{Field: "preferences.theme", Reason: "must be light, dark or system"}
	}
	if settings.Preferences.DefaultReminderFrequency < 1 {
		return nil, models.ValidationError{Field: "preferences.defaultReminderFrequency", Reason: "must be at least 1 day"}
	}

	settings.UserID = userID
	if err := s.Repo.Save(ctx, settings); err != nil {
		utils.GetLogger().Error("settings save failed", zap.String("userId", userID), zap.Error(err))
		return nil, err
	}
	s.Hub.Publish(ctx, userID, stream.CollectionSettings)
	return &settings, nil
}
