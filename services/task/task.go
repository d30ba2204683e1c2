package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"growlytics/models"
	"growlytics/services/care"
	"growlytics/services/stream"
	"growlytics/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func (s *DefaultTaskService) List(ctx context.Context, userID string) ([]models.Task, error) {
	return s.Repo.GetAll(ctx, userID)
}

// Refresh runs the materializer over the current snapshot and persists
// whatever it produced. A failed task write is logged and skipped, never
// retried; the reminder stays due and the next refresh picks it up again.
func (s *DefaultTaskService) Refresh(ctx context.Context, userID string) ([]models.Task, error) {
	reminders, err := s.Reminders.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.Repo.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	created := care.GenerateDueTasks(reminders, tasks, time.Now())
	persisted := make([]models.Task, 0, len(created))
	for _, t := range created {
		t.UserID = userID
		if err := s.Repo.Save(ctx, t); err != nil {
			utils.GetLogger().Error("task refresh: save failed",
				zap.String("reminderId", t.ReminderID), zap.Error(err))
			continue
		}
		persisted = append(persisted, t)
		tasks = append(tasks, t)
	}

	if len(persisted) > 0 {
		s.Hub.Publish(ctx, userID, stream.CollectionTasks)
		if s.Notifier != nil {
			s.Notifier.NotifyTasksDue(ctx, userID, persisted)
		}
	}
	return tasks, nil
}

func (s *DefaultTaskService) Create(ctx context.Context, userID string, task models.Task) (*models.Task, error) {
	if task.PlantID == "" {
		return nil, models.ValidationError{Field: "plantId", Reason: "must not be empty"}
	}
	if task.Type == "" {
		return nil, models.ValidationError{Field: "type", Reason: "must not be empty"}
	}
	if _, ok := utils.ParseDate(task.DueDate); !ok {
		return nil, models.ValidationError{Field: "dueDate", Reason: "must be a valid timestamp"}
	}

	task.ID = uuid.New().String()
	task.UserID = userID
	task.Completed = false
	task.CompletedDate = ""

	if err := s.Repo.Save(ctx, task); err != nil {
		utils.GetLogger().Error("task create failed", zap.String("userId", userID), zap.Error(err))
		return nil, err
	}
	s.Hub.Publish(ctx, userID, stream.CollectionTasks)
	return &task, nil
}

// Complete stamps the task done and advances the owning reminder. The
// two writes are sequential; when the reminder write-back fails the task
// stays completed and the error is surfaced so the caller knows the
// schedule was not advanced.
func (s *DefaultTaskService) Complete(ctx context.Context, userID, id string) (*models.Task, error) {
	t, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("task %s not found", id)
		}
		return nil, err
	}
	if t.Completed {
		return t, nil
	}

	now := time.Now()
	t.Completed = true
	t.CompletedDate = utils.FormatDate(now)
	if err := s.Repo.Save(ctx, *t); err != nil {
		return nil, err
	}
	s.Hub.Publish(ctx, userID, stream.CollectionTasks)

	if t.ReminderID != "" {
		if err := s.rescheduleReminder(ctx, userID, t.ReminderID, now); err != nil {
			utils.GetLogger().Error("task complete: reminder reschedule failed",
				zap.String("taskId", id), zap.String("reminderId", t.ReminderID), zap.Error(err))
			return t, err
		}
	}
	return t, nil
}

func (s *DefaultTaskService) rescheduleReminder(ctx context.Context, userID, reminderID string, now time.Time) error {
	r, err := s.Reminders.GetByID(ctx, userID, reminderID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Reminder deleted since the task was spawned; nothing to advance.
			return nil
		}
		return err
	}

	r.LastDone = utils.FormatDate(now)
	r.NextDue = utils.FormatDate(now.AddDate(0, 0, r.Frequency))
	if err := s.Reminders.Save(ctx, *r); err != nil {
		return err
	}
	s.Hub.Publish(ctx, userID, stream.CollectionReminders)
	return nil
}

func (s *DefaultTaskService) Delete(ctx context.Context, userID, id string) error {
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.Hub.Publish(ctx, userID, stream.CollectionTasks)
	return nil
}
