package taskRepo

import (
	"context"

	"growlytics/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoTaskRepo) Save(ctx context.Context, task models.Task) error {
	filter := bson.M{"userId": task.UserID, "id": task.ID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, task, opts); err != nil {
		return models.WriteError{Collection: "tasks", Err: err}
	}
	return nil
}

func (r *mongoTaskRepo) GetByID(ctx context.Context, userID, id string) (*models.Task, error) {
	var task models.Task
	err := r.coll.FindOne(ctx, bson.M{"userId": userID, "id": id}).Decode(&task)
	if err != nil {
		return nil, models.ReadError{Collection: "tasks", Err: err}
	}
	return &task, nil
}

func (r *mongoTaskRepo) GetAll(ctx context.Context, userID string) ([]models.Task, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, models.ReadError{Collection: "tasks", Err: err}
	}
	defer cursor.Close(ctx)

	tasks := []models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, models.ReadError{Collection: "tasks", Err: err}
	}
	return tasks, nil
}

func (r *mongoTaskRepo) Delete(ctx context.Context, userID, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID, "id": id}); err != nil {
		return models.WriteError{Collection: "tasks", Err: err}
	}
	return nil
}

func (r *mongoTaskRepo) DeleteByPlant(ctx context.Context, userID, plantID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"userId": userID, "plantId": plantID}); err != nil {
		return models.WriteError{Collection: "tasks", Err: err}
	}
	return nil
}

func (r *mongoTaskRepo) DeleteIncompleteByReminder(ctx context.Context, userID, reminderID string) error {
	filter := bson.M{"userId": userID, "reminderId": reminderID, "completed": false}
	if _, err := r.coll.DeleteMany(ctx, filter); err != nil {
		return models.WriteError{Collection: "tasks", Err: err}
	}
	return nil
}

func (r *mongoTaskRepo) ReplaceAll(ctx context.Context, userID string, tasks []models.Task) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
		return models.WriteError{Collection: "tasks", Err: err}
	}
	if len(tasks) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(tasks))
	for _, t := range tasks {
		t.UserID = userID
		docs = append(docs, t)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return models.WriteError{Collection: "tasks", Err: err}
	}
	return nil
}
