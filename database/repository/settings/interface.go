package settingsRepo

import (
	"context"

	"growlytics/database"
	"growlytics/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SettingsRepository defines data access for the per-user settings
// singleton.
type SettingsRepository interface {
	// Get returns the user's settings, or nil when none were ever saved.
	Get(ctx context.Context, userID string) (*models.UserSettings, error)
	// Save upserts the user's settings record.
	Save(ctx context.Context, settings models.UserSettings) error
	// Delete removes the user's settings record.
	Delete(ctx context.Context, userID string) error
}

type mongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo returns a SettingsRepository backed by MongoDB.
func NewMongoSettingsRepo() SettingsRepository {
	return &mongoSettingsRepo{coll: database.DB().Collection("settings")}
}
