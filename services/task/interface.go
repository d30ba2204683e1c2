package task

import (
	"context"

	reminderRepo "growlytics/database/repository/reminder"
	taskRepo "growlytics/database/repository/task"
	"growlytics/models"
	"growlytics/services/notification"
	"growlytics/services/stream"
)

// TaskService manages concrete care tasks, including materializing due
// reminders into new ones.
type TaskService interface {
	List(ctx context.Context, userID string) ([]models.Task, error)
	// Refresh materializes due reminders into pending tasks and returns
	// the full task list afterwards.
	Refresh(ctx context.Context, userID string) ([]models.Task, error)
	Create(ctx context.Context, userID string, task models.Task) (*models.Task, error)
	// Complete marks a task done and reschedules its reminder.
	Complete(ctx context.Context, userID, id string) (*models.Task, error)
	Delete(ctx context.Context, userID, id string) error
}

// DefaultTaskService is the production implementation.
type DefaultTaskService struct {
	Repo      taskRepo.TaskRepository
	Reminders reminderRepo.ReminderRepository
	Hub       *stream.Hub
	Notifier  notification.NotificationService
}
