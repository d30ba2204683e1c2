package plant

import (
	"context"

	plantRepo "growlytics/database/repository/plant"
	reminderRepo "growlytics/database/repository/reminder"
	taskRepo "growlytics/database/repository/task"
	"growlytics/models"
	"growlytics/services/stream"
)

// PlantService manages a user's plant collection.
type PlantService interface {
	List(ctx context.Context, userID string) ([]models.Plant, error)
	Get(ctx context.Context, userID, id string) (*models.Plant, error)
	Create(ctx context.Context, userID string, plant models.Plant) (*models.Plant, error)
	Update(ctx context.Context, userID string, plant models.Plant) (*models.Plant, error)
	// Delete removes a plant together with its reminders and tasks.
	Delete(ctx context.Context, userID, id string) error
	// SetPhoto stores an uploaded photo URL on the plant record.
	SetPhoto(ctx context.Context, userID, id, photoURL string) (*models.Plant, error)
}

// DefaultPlantService is the production implementation.
type DefaultPlantService struct {
	Repo      plantRepo.PlantRepository
	Reminders reminderRepo.ReminderRepository
	Tasks     taskRepo.TaskRepository
	Hub       *stream.Hub
}
