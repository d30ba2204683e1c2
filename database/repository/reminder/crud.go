package reminderRepo

import (
	"context"

	"growlytics/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoReminderRepo) Save(ctx context.Context, reminder models.Reminder) error {
	filter := bson.M{"userId": reminder.UserID, "id": reminder.ID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, reminder, opts); err != nil {
		return models.WriteError{Collection: "reminders", Err: err}
	}
	return nil
}

func (r *mongoReminderRepo) GetByID(ctx context.Context, userID, id string) (*models.Reminder, error) {
	var reminder models.Reminder
	err := r.coll.FindOne(ctx, bson.M{"userId": userID, "id": id}).Decode(&reminder)
	if err != nil {
		return nil, models.ReadError{Collection: "reminders", Err: err}
	}
	return &reminder, nil
}

func (r *mongoReminderRepo) GetAll(ctx context.Context, userID string) ([]models.Reminder, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, models.ReadError{Collection: "reminders", Err: err}
	}
	defer cursor.Close(ctx)

	reminders := []models.Reminder{}
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, models.ReadError{Collection: "reminders", Err: err}
	}
	return reminders, nil
}

func (r *mongoReminderRepo) Delete(ctx context.Context, userID, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID, "id": id}); err != nil {
		return models.WriteError{Collection: "reminders", Err: err}
	}
	return nil
}

func (r *mongoReminderRepo) DeleteByPlant(ctx context.Context, userID, plantID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"userId": userID, "plantId": plantID}); err != nil {
		return models.WriteError{Collection: "reminders", Err: err}
	}
	return nil
}

func (r *mongoReminderRepo) ReplaceAll(ctx context.Context, userID string, reminders []models.Reminder) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
		return models.WriteError{Collection: "reminders", Err: err}
	}
	if len(reminders) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(reminders))
	for _, rec := range reminders {
		rec.UserID = userID
		docs = append(docs, rec)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return models.WriteError{Collection: "reminders", Err: err}
	}
	return nil
}
