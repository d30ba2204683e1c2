package reminder

import (
	"context"
	"errors"
	"fmt"

	"growlytics/models"
	"growlytics/services/stream"
	"growlytics/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func (s *DefaultReminderService) List(ctx context.Context, userID string) ([]models.Reminder, error) {
	return s.Repo.GetAll(ctx, userID)
}

func (s *DefaultReminderService) validate(ctx context.Context, userID string, r models.Reminder) error {
	if r.PlantID == "" {
		return models.ValidationError{Field: "plantId", Reason: "must not be empty"}
	}
	if !models.ValidReminderType(r.Type) {
		return models.ValidationError{Field: "type", Reason: fmt.Sprintf("unknown care type %q", r.Type)}
	}
	if r.Frequency < 1 {
		return models.ValidationError{Field: "frequency", Reason: "must be at least 1 day"}
	}
	if _, ok := utils.ParseDate(r.NextDue); !ok {
		return models.ValidationError{Field: "nextDue", Reason: "must be a valid timestamp"}
	}

	if _, err := s.Plants.GetByID(ctx, userID, r.PlantID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.ValidationError{Field: "plantId", Reason: fmt.Sprintf("plant %s does not exist", r.PlantID)}
		}
		return err
	}
	return nil
}

func (s *DefaultReminderService) Create(ctx context.Context, userID string, reminder models.Reminder) (*models.Reminder, error) {
	if err := s.validate(ctx, userID, reminder); err != nil {
		return nil, err
	}

	reminder.ID = uuid.New().String()
	reminder.UserID = userID

	if err := s.Repo.Save(ctx, reminder); err != nil {
		utils.GetLogger().Error("reminder create failed", zap.String("userId", userID), zap.Error(err))
		return nil, err
	}
	s.Hub.Publish(ctx, userID, stream.CollectionReminders)
	return &reminder, nil
}

func (s *DefaultReminderService) Update(ctx context.Context, userID string, reminder models.Reminder) (*models.Reminder, error) {
	if _, err := s.Repo.GetByID(ctx, userID, reminder.ID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("reminder %s not found", reminder.ID)
		}
		return nil, err
	}
	if err := s.validate(ctx, userID, reminder); err != nil {
		return nil, err
	}

	reminder.UserID = userID
	if err := s.Repo.Save(ctx, reminder); err != nil {
		utils.GetLogger().Error("reminder update failed", zap.String("reminderId", reminder.ID), zap.Error(err))
		return nil, err
	}
	s.Hub.Publish(ctx, userID, stream.CollectionReminders)
	return &reminder, nil
}

// Delete removes the reminder and its pending tasks. Completed tasks stay
// so the care history and streak are unaffected.
func (s *DefaultReminderService) Delete(ctx context.Context, userID, id string) error {
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.Hub.Publish(ctx, userID, stream.CollectionReminders)

	if err := s.Tasks.DeleteIncompleteByReminder(ctx, userID, id); err != nil {
		utils.GetLogger().Error("reminder delete: task cascade failed",
			zap.String("reminderId", id), zap.Error(err))
		return err
	}
	s.Hub.Publish(ctx, userID, stream.CollectionTasks)
	return nil
}
