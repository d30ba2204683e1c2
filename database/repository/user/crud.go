package userRepo

import (
	"context"
	"errors"

	"growlytics/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no user matches the lookup.
var ErrNotFound = errors.New("user not found")

func (r *mongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, models.ReadError{Collection: "users", Err: err}
	}
	return &user, nil
}

func (r *mongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, models.ReadError{Collection: "users", Err: err}
	}
	return &user, nil
}

func (r *mongoUserRepo) Create(ctx context.Context, user models.User) error {
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return models.WriteError{Collection: "users", Err: err}
	}
	return nil
}

func (r *mongoUserRepo) Update(ctx context.Context, user models.User) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": user.ID}, user)
	if err != nil {
		return models.WriteError{Collection: "users", Err: err}
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoUserRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return models.WriteError{Collection: "users", Err: err}
	}
	return nil
}

// ensureIndexes creates indexes for fields frequently used in lookups.
func (r *mongoUserRepo) ensureIndexes() {
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	// Best effort; duplicate-email writes still fail at insert time.
	r.coll.Indexes().CreateMany(context.Background(), indexModels)
}
