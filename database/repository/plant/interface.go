package plantRepo

import (
	"context"

	"growlytics/database"
	"growlytics/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PlantRepository defines data access for a user's plant collection.
type PlantRepository interface {
	// Save upserts a plant by its ID.
	Save(ctx context.Context, plant models.Plant) error
	// GetByID retrieves a single plant owned by the user.
	GetByID(ctx context.Context, userID, id string) (*models.Plant, error)
	// GetAll retrieves the user's full plant collection.
	GetAll(ctx context.Context, userID string) ([]models.Plant, error)
	// Delete removes a plant by ID. Missing records are not an error.
	Delete(ctx context.Context, userID, id string) error
	// ReplaceAll swaps the user's entire plant collection (data import).
	ReplaceAll(ctx context.Context, userID string, plants []models.Plant) error
}

type mongoPlantRepo struct {
	coll *mongo.Collection
}

// NewMongoPlantRepo returns a PlantRepository backed by MongoDB.
func NewMongoPlantRepo() PlantRepository {
	r := &mongoPlantRepo{coll: database.DB().Collection("plants")}
	r.ensureIndexes()
	return r
}
