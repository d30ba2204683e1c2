package reminderRepo

import (
	"context"

	"growlytics/database"
	"growlytics/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReminderRepository defines data access for a user's care reminders.
type ReminderRepository interface {
	// Save upserts a reminder by its ID.
	Save(ctx context.Context, reminder models.Reminder) error
	// GetByID retrieves a single reminder owned by the user.
	GetByID(ctx context.Context, userID, id string) (*models.Reminder, error)
	// GetAll retrieves the user's full reminder collection.
	GetAll(ctx context.Context, userID string) ([]models.Reminder, error)
	// Delete removes a reminder by ID.
	Delete(ctx context.Context, userID, id string) error
	// DeleteByPlant removes every reminder referencing the given plant.
	DeleteByPlant(ctx context.Context, userID, plantID string) error
	// ReplaceAll swaps the user's entire reminder collection (data import).
	ReplaceAll(ctx context.Context, userID string, reminders []models.Reminder) error
}

type mongoReminderRepo struct {
	coll *mongo.Collection
}

// NewMongoReminderRepo returns a ReminderRepository backed by MongoDB.
func NewMongoReminderRepo() ReminderRepository {
	return &mongoReminderRepo{coll: database.DB().Collection("reminders")}
}
