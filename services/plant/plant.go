package plant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"growlytics/models"
	"growlytics/services/stream"
	"growlytics/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func (s *DefaultPlantService) List(ctx context.Context, userID string) ([]models.Plant, error) {
	return s.Repo.GetAll(ctx, userID)
}

func (s *DefaultPlantService) Get(ctx context.Context, userID, id string) (*models.Plant, error) {
	p, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("plant %s not found", id)
		}
		return nil, err
	}
	return p, nil
}

// Create validates and persists a new plant, stamping the ID and the
// dateAdded timestamp server side.
func (s *DefaultPlantService) Create(ctx context.Context, userID string, plant models.Plant) (*models.Plant, error) {
	if strings.TrimSpace(plant.Name) == "" {
		return nil, models.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	plant.ID = uuid.New().String()
	plant.UserID = userID
	if plant.DateAdded == "" {
		plant.DateAdded = utils.FormatDate(time.Now())
	}

	if err := s.Repo.Save(ctx, plant); err != nil {
		utils.GetLogger().Error("plant create failed", zap.String("userId", userID), zap.Error(err))
		return nil, err
	}
	s.Hub.Publish(ctx, userID, stream.CollectionPlants)
	return &plant, nil
}

func (s *DefaultPlantService) Update(ctx context.Context, userID string, plant models.Plant) (*models.Plant, error) {
	if strings.TrimSpace(plant.Name) == "" {
		return nil, models.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	existing, err := s.Repo.GetByID(ctx, userID, plant.ID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("plant %s not found", plant.ID)
		}
		return nil, err
	}

	plant.UserID = userID
	// dateAdded is immutable once set.
	plant.DateAdded = existing.DateAdded

	if err := s.Repo.Save(ctx, plant); err != nil {
		utils.GetLogger().Error("plant update failed", zap.String("plantId", plant.ID), zap.Error(err))
		return nil, err
	}
	s.Hub.Publish(ctx, userID, stream.CollectionPlants)
	return &plant, nil
}

// Delete removes the plant and cascades to its reminders and tasks so no
// orphaned records accumulate. Each collection is deleted independently;
// a failed cascade is surfaced after the plant itself is gone.
func (s *DefaultPlantService) Delete(ctx context.Context, userID, id string) error {
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.Hub.Publish(ctx, userID, stream.CollectionPlants)

	if err := s.Reminders.DeleteByPlant(ctx, userID, id); err != nil {
		utils.GetLogger().Error("plant delete: reminder cascade failed",
			zap.String("plantId", id), zap.Error(err))
		return err
	}
	s.Hub.Publish(ctx, userID, stream.CollectionReminders)

	if err := s.Tasks.DeleteByPlant(ctx, userID, id); err != nil {
		utils.GetLogger().Error("plant delete: task cascade failed",
			zap.String("plantId", id), zap.Error(err))
		return err
	}
	s.Hub.Publish(ctx, userID, stream.CollectionTasks)
	return nil
}

func (s *DefaultPlantService) SetPhoto(ctx context.Context, userID, id, photoURL string) (*models.Plant, error) {
	existing, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("plant %s not found", id)
		}
		return nil, err
	}

	existing.Photo = photoURL
	if err := s.Repo.Save(ctx, *existing); err != nil {
		return nil, err
	}
	s.Hub.Publish(ctx, userID, stream.CollectionPlants)
	return existing, nil
}
