package reminder

import (
	"context"

	plantRepo "growlytics/database/repository/plant"
	reminderRepo "growlytics/database/repository/reminder"
	taskRepo "growlytics/database/repository/task"
	"growlytics/models"
	"growlytics/services/stream"
)

// ReminderService manages recurring care rules.
type ReminderService interface {
	List(ctx context.Context, userID string) ([]models.Reminder, error)
	Create(ctx context.Context, userID string, reminder models.Reminder) (*models.Reminder, error)
	Update(ctx context.Context, userID string, reminder models.Reminder) (*models.Reminder, error)
	// Delete removes a reminder together with its still-pending tasks.
	Delete(ctx context.Context, userID, id string) error
}

// DefaultReminderService is the production implementation.
type DefaultReminderService struct {
	Repo   reminderRepo.ReminderRepository
	Plants plantRepo.PlantRepository
	Tasks  taskRepo.TaskRepository
	Hub    *stream.Hub
}
