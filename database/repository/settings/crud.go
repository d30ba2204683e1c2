package settingsRepo

import (
	"context"
	"errors"

	"growlytics/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoSettingsRepo) Get(ctx context.Context, userID string) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, models.ReadError{Collection: "settings", Err: err}
	}
	return &settings, nil
}

func (r *mongoSettingsRepo) Save(ctx context.Context, settings models.UserSettings) error {
	filter := bson.M{"userId": settings.UserID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, settings, opts); err != nil {
		return models.WriteError{Collection: "settings", Err: err}
	}
	return nil
}

func (r *mongoSettingsRepo) Delete(ctx context.Context, userID string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID}); err != nil {
		return models.WriteError{Collection: "settings", Err: err}
	}
	return nil
}
