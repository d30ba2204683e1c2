package task

import (
	"context"
	"testing"
	"time"

	"growlytics/models"
	"growlytics/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// Fakes wrap the same sentinel the mongo repos surface for misses.
var errNoDoc = mongo.ErrNoDocuments

type fakeTaskRepo struct {
	tasks map[string]models.Task
}

func newFakeTaskRepo(tasks ...models.Task) *fakeTaskRepo {
	r := &fakeTaskRepo{tasks: map[string]models.Task{}}
	for _, t := range tasks {
		r.tasks[t.ID] = t
	}
	return r
}

func (r *fakeTaskRepo) Save(ctx context.Context, t models.Task) error {
	r.tasks[t.ID] = t
	return nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, userID, id string) (*models.Task, error) {
	if t, ok := r.tasks[id]; ok {
		return &t, nil
	}
	return nil, models.ReadError{Collection: "tasks", Err: errNoDoc}
}

func (r *fakeTaskRepo) GetAll(ctx context.Context, userID string) ([]models.Task, error) {
	out := []models.Task{}
	for _, t := range r.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, userID, id string) error {
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) DeleteByPlant(ctx context.Context, userID, plantID string) error {
	for id, t := range r.tasks {
		if t.PlantID == plantID {
			delete(r.tasks, id)
		}
	}
	return nil
}

func (r *fakeTaskRepo) DeleteIncompleteByReminder(ctx context.Context, userID, reminderID string) error {
	for id, t := range r.tasks {
		if t.ReminderID == reminderID && !t.Completed {
			delete(r.tasks, id)
		}
	}
	return nil
}

func (r *fakeTaskRepo) ReplaceAll(ctx context.Context, userID string, tasks []models.Task) error {
	r.tasks = map[string]models.Task{}
	for _, t := range tasks {
		r.tasks[t.ID] = t
	}
	return nil
}

type fakeReminderRepo struct {
	reminders map[string]models.Reminder
}

func newFakeReminderRepo(reminders ...models.Reminder) *fakeReminderRepo {
	r := &fakeReminderRepo{reminders: map[string]models.Reminder{}}
	for _, rem := range reminders {
		r.reminders[rem.ID] = rem
	}
	return r
}

func (r *fakeReminderRepo) Save(ctx context.Context, rem models.Reminder) error {
	r.reminders[rem.ID] = rem
	return nil
}

func (r *fakeReminderRepo) GetByID(ctx context.Context, userID, id string) (*models.Reminder, error) {
	if rem, ok := r.reminders[id]; ok {
		return &rem, nil
	}
	return nil, models.ReadError{Collection: "reminders", Err: errNoDoc}
}

func (r *fakeReminderRepo) GetAll(ctx context.Context, userID string) ([]models.Reminder, error) {
	out := []models.Reminder{}
	for _, rem := range r.reminders {
		out = append(out, rem)
	}
	return out, nil
}

func (r *fakeReminderRepo) Delete(ctx context.Context, userID, id string) error {
	delete(r.reminders, id)
	return nil
}

func (r *fakeReminderRepo) DeleteByPlant(ctx context.Context, userID, plantID string) error {
	for id, rem := range r.reminders {
		if rem.PlantID == plantID {
			delete(r.reminders, id)
		}
	}
	return nil
}

func (r *fakeReminderRepo) ReplaceAll(ctx context.Context, userID string, reminders []models.Reminder) error {
	r.reminders = map[string]models.Reminder{}
	for _, rem := range reminders {
		r.reminders[rem.ID] = rem
	}
	return nil
}

func TestCompleteStampsTaskAndReschedulesReminder(t *testing.T) {
	past := utils.FormatDate(time.Now().AddDate(0, 0, -1))
	reminders := newFakeReminderRepo(models.Reminder{
		ID: "r1", PlantID: "p1", Type: models.ReminderWatering, Frequency: 7, NextDue: past,
	})
	tasks := newFakeTaskRepo(models.Task{
		ID: "t1", PlantID: "p1", ReminderID: "r1", Type: models.ReminderWatering, DueDate: past,
	})
	svc := &DefaultTaskService{Repo: tasks, Reminders: reminders}

	done, err := svc.Complete(context.Background(), "u1", "t1")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if !done.Completed {
		t.Errorf("task not marked completed")
	}
	if _, ok := utils.ParseDate(done.CompletedDate); !ok {
		t.Errorf("completedDate %q not a valid timestamp", done.CompletedDate)
	}

	rem := reminders.reminders["r1"]
	nextDue, ok := utils.ParseDate(rem.NextDue)
	if !ok {
		t.Fatalf("nextDue %q not a valid timestamp", rem.NextDue)
	}
	want := time.Now().AddDate(0, 0, 7)
	if diff := nextDue.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Errorf("nextDue advanced to %s, want about %s", nextDue, want)
	}
	if _, ok := utils.ParseDate(rem.LastDone); !ok {
		t.Errorf("lastDone %q not a valid timestamp", rem.LastDone)
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	past := utils.FormatDate(time.Now().AddDate(0, 0, -1))
	reminders := newFakeReminderRepo(models.Reminder{
		ID: "r1", PlantID: "p1", Type: models.ReminderWatering, Frequency: 7, NextDue: past,
	})
	tasks := newFakeTaskRepo(models.Task{
		ID: "t1", PlantID: "p1", ReminderID: "r1", Type: models.ReminderWatering, DueDate: past,
	})
	svc := &DefaultTaskService{Repo: tasks, Reminders: reminders}

	first, err := svc.Complete(context.Background(), "u1", "t1")
	if err != nil {
		t.Fatalf("first Complete failed: %v", err)
	}
	firstNextDue := reminders.reminders["r1"].NextDue

	second, err := svc.Complete(context.Background(), "u1", "t1")
	if err != nil {
		t.Fatalf("second Complete failed: %v", err)
	}
	if second.CompletedDate != first.CompletedDate {
		t.Errorf("completion stamp changed on repeat call")
	}
	if reminders.reminders["r1"].NextDue != firstNextDue {
		t.Errorf("reminder rescheduled twice")
	}
}

func TestCompleteSurvivesDeletedReminder(t *testing.T) {
	past := utils.FormatDate(time.Now().AddDate(0, 0, -1))
	tasks := newFakeTaskRepo(models.Task{
		ID: "t1", PlantID: "p1", ReminderID: "gone", Type: models.ReminderWatering, DueDate: past,
	})
	svc := &DefaultTaskService{Repo: tasks, Reminders: newFakeReminderRepo()}

	done, err := svc.Complete(context.Background(), "u1", "t1")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if !done.Completed {
		t.Errorf("task not marked completed")
	}
}

func TestRefreshPersistsMaterializedTasks(t *testing.T) {
	past := utils.FormatDate(time.Now().AddDate(0, 0, -1))
	reminders := newFakeReminderRepo(models.Reminder{
		ID: "r1", PlantID: "p1", Type: models.ReminderWatering, Frequency: 7, NextDue: past,
	})
	tasks := newFakeTaskRepo()
	svc := &DefaultTaskService{Repo: tasks, Reminders: reminders}

	out, err := svc.Refresh(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 task after refresh, got %d", len(out))
	}
	if len(tasks.tasks) != 1 {
		t.Fatalf("expected 1 persisted task, got %d", len(tasks.tasks))
	}

	// A second refresh must not duplicate the pending task.
	out, err = svc.Refresh(context.Background(), "u1")
	if err != nil {
		t.Fatalf("second Refresh failed: %v", err)
	}
	if len(out) != 1 || len(tasks.tasks) != 1 {
		t.Fatalf("refresh duplicated tasks: %d listed, %d stored", len(out), len(tasks.tasks))
	}
}
