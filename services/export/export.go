// Package export produces and consumes the portable data bundle a user
// can download from the settings screen and load back in later.
package export

import (
	"context"
	"time"

	plantRepo "growlytics/database/repository/plant"
	reminderRepo "growlytics/database/repository/reminder"
	settingsRepo "growlytics/database/repository/settings"
	taskRepo "growlytics/database/repository/task"
	"growlytics/models"
	"growlytics/services/stream"
	"growlytics/utils"
)

// ExportService moves a user's full dataset in and out of the store.
type ExportService interface {
	Export(ctx context.Context, userID string) (*models.ExportBundle, error)
	// Import replaces the user's plants, reminders and tasks wholesale
	// and saves the bundled settings when present.
	Import(ctx context.Context, userID string, bundle models.ExportBundle) error
}

// DefaultExportService is the production implementation.
type DefaultExportService struct {
	Plants    plantRepo.PlantRepository
	Reminders reminderRepo.ReminderRepository
	Tasks     taskRepo.TaskRepository
	Settings  settingsRepo.SettingsRepository
	Hub       *stream.Hub
}

func (s *DefaultExportService) Export(ctx context.Context, userID string) (*models.ExportBundle, error) {
	plants, err := s.Plants.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	reminders, err := s.Reminders.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.Tasks.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	settings, err := s.Settings.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.ExportBundle{
		Plants:     plants,
		Reminders:  reminders,
		Tasks:      tasks,
		Settings:   settings,
		ExportDate: utils.FormatDate(time.Now()),
	}, nil
}

func (s *DefaultExportService) Import(ctx context.Context, userID string, bundle models.ExportBundle) error {
	if bundle.Plants == nil || bundle.Reminders == nil || bundle.Tasks == nil {
		return models.ValidationError{Field: "bundle", Reason: "plants, reminders and tasks are required"}
	}

	if err := s.Plants.ReplaceAll(ctx, userID, bundle.Plants); err != nil {
		return err
	}
	s.Hub.Publish(ctx, userID, stream.CollectionPlants)

	if err := s.Reminders.ReplaceAll(ctx, userID, bundle.Reminders); err != nil {
		return err
	}
	s.Hub.Publish(ctx, userID, stream.CollectionReminders)

	if err := s.Tasks.ReplaceAll(ctx, userID, bundle.Tasks); err != nil {
		return err
	}
	s.Hub.Publish(ctx, userID, stream.CollectionTasks)

	if bundle.Settings != nil {
		settings := *bundle.Settings
		settings.UserID = userID
		if err := s.Settings.Save(ctx, settings); err != nil {
			return err
		}
		s.Hub.Publish(ctx, userID, stream.CollectionSettings)
	}
	return nil
}
