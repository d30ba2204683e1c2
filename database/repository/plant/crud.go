package plantRepo

import (
	"context"

	"growlytics/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoPlantRepo) Save(ctx context.Context, plant models.Plant) error {
	filter := bson.M{"userId": plant.UserID, "id": plant.ID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, plant, opts); err != nil {
		return models.WriteError{Collection: "plants", Err: err}
	}
	return nil
}

func (r *mongoPlantRepo) GetByID(ctx context.Context, userID, id string) (*models.Plant, error) {
	var plant models.Plant
	err := r.coll.FindOne(ctx, bson.M{"userId": userID, "id": id}).Decode(&plant)
	if err != nil {
		return nil, models.ReadError{Collection: "plants", Err: err}
	}
	return &plant, nil
}

func (r *mongoPlantRepo) GetAll(ctx context.Context, userID string) ([]models.Plant, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, models.ReadError{Collection: "plants", Err: err}
	}
	defer cursor.Close(ctx)

	plants := []models.Plant{}
	if err := cursor.All(ctx, &plants); err != nil {
		return nil, models.ReadError{Collection: "plants", Err: err}
	}
	return plants, nil
}

func (r *mongoPlantRepo) Delete(ctx context.Context, userID, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID, "id": id}); err != nil {
		return models.WriteError{Collection: "plants", Err: err}
	}
	return nil
}

func (r *mongoPlantRepo) ReplaceAll(ctx context.Context, userID string, plants []models.Plant) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
		return models.WriteError{Collection: "plants", Err: err}
	}
	if len(plants) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(plants))
	for _, p := range plants {
		p.UserID = userID
		docs = append(docs, p)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return models.WriteError{Collection: "plants", Err: err}
	}
	return nil
}

func (r *mongoPlantRepo) ensureIndexes() {
	ctx := context.Background()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	// Index creation is best effort; queries still work without it.
	r.coll.Indexes().CreateMany(ctx, indexModels)
}
