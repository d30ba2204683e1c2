package taskRepo

import (
	"context"

	"growlytics/database"
	"growlytics/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TaskRepository defines data access for a user's care tasks.
type TaskRepository interface {
	// Save upserts a task by its ID.
	Save(ctx context.Context, task models.Task) error
	// GetByID retrieves a single task owned by the user.
	GetByID(ctx context.Context, userID, id string) (*models.Task, error)
	// GetAll retrieves the user's full task collection.
	GetAll(ctx context.Context, userID string) ([]models.Task, error)
	// Delete removes a task by ID.
	Delete(ctx context.Context, userID, id string) error
	// DeleteByPlant removes every task referencing the given plant.
	DeleteByPlant(ctx context.Context, userID, plantID string) error
	// DeleteIncompleteByReminder removes pending tasks spawned by a
	// reminder. Completed tasks stay for the care history.
	DeleteIncompleteByReminder(ctx context.Context, userID, reminderID string) error
	// ReplaceAll swaps the user's entire task collection (data import).
	ReplaceAll(ctx context.Context, userID string, tasks []models.Task) error
}

type mongoTaskRepo struct {
	coll *mongo.Collection
}

// NewMongoTaskRepo returns a TaskRepository backed by MongoDB.
func NewMongoTaskRepo() TaskRepository {
	return &mongoTaskRepo{coll: database.DB().Collection("tasks")}
}
