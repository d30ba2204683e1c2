package plant

import (
	"context"
	"testing"

	"growlytics/models"
	"growlytics/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakePlantRepo struct {
	plants map[string]models.Plant
}

func newFakePlantRepo(plants ...models.Plant) *fakePlantRepo {
	r := &fakePlantRepo{plants: map[string]models.Plant{}}
	for _, p := range plants {
		r.plants[p.ID] = p
	}
	return r
}

func (r *fakePlantRepo) Save(ctx context.Context, p models.Plant) error {
	r.plants[p.ID] = p
	return nil
}

func (r *fakePlantRepo) GetByID(ctx context.Context, userID, id string) (*models.Plant, error) {
	if p, ok := r.plants[id]; ok {
		return &p, nil
	}
	return nil, models.ReadError{Collection: "plants", Err: mongo.ErrNoDocuments}
}

func (r *fakePlantRepo) GetAll(ctx context.Context, userID string) ([]models.Plant, error) {
	out := []models.Plant{}
	for _, p := range r.plants {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePlantRepo) Delete(ctx context.Context, userID, id string) error {
	delete(r.plants, id)
	return nil
}

func (r *fakePlantRepo) ReplaceAll(ctx context.Context, userID string, plants []models.Plant) error {
	r.plants = map[string]models.Plant{}
	for _, p := range plants {
		r.plants[p.ID] = p
	}
	return nil
}

type cascadeRecorder struct {
	reminderPlantIDs []string
	taskPlantIDs     []string
}

type fakeReminderCascade struct{ rec *cascadeRecorder }

func (r *fakeReminderCascade) Save(ctx context.Context, rem models.Reminder) error { return nil }
func (r *fakeReminderCascade) GetByID(ctx context.Context, userID, id string) (*models.Reminder, error) {
	return nil, models.ReadError{Collection: "reminders", Err: mongo.ErrNoDocuments}
}
func (r *fakeReminderCascade) GetAll(ctx context.Context, userID string) ([]models.Reminder, error) {
	return []models.Reminder{}, nil
}
func (r *fakeReminderCascade) Delete(ctx context.Context, userID, id string) error { return nil }
func (r *fakeReminderCascade) DeleteByPlant(ctx context.Context, userID, plantID string) error {
	r.rec.reminderPlantIDs = append(r.rec.reminderPlantIDs, plantID)
	return nil
}
func (r *fakeReminderCascade) ReplaceAll(ctx context.Context, userID string, reminders []models.Reminder) error {
	return nil
}

type fakeTaskCascade struct{ rec *cascadeRecorder }

func (r *fakeTaskCascade) Save(ctx context.Context, t models.Task) error { return nil }
func (r *fakeTaskCascade) GetByID(ctx context.Context, userID, id string) (*models.Task, error) {
	return nil, models.ReadError{Collection: "tasks", Err: mongo.ErrNoDocuments}
}
func (r *fakeTaskCascade) GetAll(ctx context.Context, userID string) ([]models.Task, error) {
	return []models.Task{}, nil
}
func (r *fakeTaskCascade) Delete(ctx context.Context, userID, id string) error { return nil }
func (r *fakeTaskCascade) DeleteByPlant(ctx context.Context, userID, plantID string) error {
	r.rec.taskPlantIDs = append(r.rec.taskPlantIDs, plantID)
	return nil
}
func (r *fakeTaskCascade) DeleteIncompleteByReminder(ctx context.Context, userID, reminderID string) error {
	return nil
}
func (r *fakeTaskCascade) ReplaceAll(ctx context.Context, userID string, tasks []models.Task) error {
	return nil
}

func newService(repo *fakePlantRepo, rec *cascadeRecorder) *DefaultPlantService {
	return &DefaultPlantService{
		Repo:      repo,
		Reminders: &fakeReminderCascade{rec: rec},
		Tasks:     &fakeTaskCascade{rec: rec},
	}
}

func TestCreateRejectsEmptyName(t *testing.T) {
	svc := newService(newFakePlantRepo(), &cascadeRecorder{})

	_, err := svc.Create(context.Background(), "u1", models.Plant{Name: "   "})
	var verr models.ValidationError
	if !asValidation(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "name" {
		t.Errorf("Field = %q, want name", verr.Field)
	}
}

func TestCreateStampsIDAndDateAdded(t *testing.T) {
	repo := newFakePlantRepo()
	svc := newService(repo, &cascadeRecorder{})

	created, err := svc.Create(context.Background(), "u1", models.Plant{Name: "Fern", Type: "fern"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Errorf("expected generated ID")
	}
	if created.UserID != "u1" {
		t.Errorf("UserID = %q, want u1", created.UserID)
	}
	if _, ok := utils.ParseDate(created.DateAdded); !ok {
		t.Errorf("dateAdded %q not a valid timestamp", created.DateAdded)
	}
	if len(repo.plants) != 1 {
		t.Errorf("expected 1 stored plant, got %d", len(repo.plants))
	}
}

func TestUpdatePreservesDateAdded(t *testing.T) {
	repo := newFakePlantRepo(models.Plant{ID: "p1", UserID: "u1", Name: "Fern", DateAdded: "2024-01-01T00:00:00Z"})
	svc := newService(repo, &cascadeRecorder{})

	updated, err := svc.Update(context.Background(), "u1", models.Plant{ID: "p1", Name: "Big Fern", DateAdded: "2030-01-01T00:00:00Z"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.DateAdded != "2024-01-01T00:00:00Z" {
		t.Errorf("dateAdded changed to %q", updated.DateAdded)
	}
	if repo.plants["p1"].Name != "Big Fern" {
		t.Errorf("name not updated")
	}
}

func TestDeleteCascades(t *testing.T) {
	repo := newFakePlantRepo(models.Plant{ID: "p1", UserID: "u1", Name: "Fern"})
	rec := &cascadeRecorder{}
	svc := newService(repo, rec)

	if err := svc.Delete(context.Background(), "u1", "p1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(repo.plants) != 0 {
		t.Errorf("plant still stored")
	}
	if len(rec.reminderPlantIDs) != 1 || rec.reminderPlantIDs[0] != "p1" {
		t.Errorf("reminder cascade not invoked for p1: %v", rec.reminderPlantIDs)
	}
	if len(rec.taskPlantIDs) != 1 || rec.taskPlantIDs[0] != "p1" {
		t.Errorf("task cascade not invoked for p1: %v", rec.taskPlantIDs)
	}
}

func asValidation(err error, target *models.ValidationError) bool {
	v, ok := err.(models.ValidationError)
	if ok {
		*target = v
	}
	return ok
}
