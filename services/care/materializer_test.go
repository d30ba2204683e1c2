package care

import (
	"testing"
	"time"

	"growlytics/models"
)

var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func day(offset int) string {
	return testNow.AddDate(0, 0, offset).Format(time.RFC3339)
}

func TestGenerateDueTasksCreatesOneTaskPerDueReminder(t *testing.T) {
	reminders := []models.Reminder{
		{ID: "r1", UserID: "u1", PlantID: "p1", Type: models.ReminderWatering, Frequency: 7, NextDue: day(0)},
		{ID: "r2", UserID: "u1", PlantID: "p2", Type: models.ReminderFertilizing, Frequency: 14, NextDue: day(5)},
	}

	created := GenerateDueTasks(reminders, nil, testNow)
	if len(created) != 1 {
		t.Fatalf("expected 1 task, got %d", len(created))
	}
	task := created[0]
	if task.ReminderID != "r1" {
		t.Fatalf("expected task for r1, got %q", task.ReminderID)
	}
	if task.DueDate != day(0) {
		t.Fatalf("expected dueDate %q, got %q", day(0), task.DueDate)
	}
	if task.Completed {
		t.Fatalf("expected new task to be incomplete")
	}
	if task.Type != models.ReminderWatering {
		t.Fatalf("expected type %q, got %q", models.ReminderWatering, task.Type)
	}
	if task.ID == "" {
		t.Fatalf("expected generated task ID")
	}
}

func TestGenerateDueTasksSkipsReminderWithPendingTask(t *testing.T) {
	reminders := []models.Reminder{
		{ID: "r1", PlantID: "p1", Type: models.ReminderWatering, Frequency: 7, NextDue: day(-3)},
	}
	// The pending task is on a different day; the dedupe is per reminder,
	// not per reminder/date pair.
	tasks := []models.Task{
		{ID: "t1", ReminderID: "r1", PlantID: "p1", DueDate: day(-10), Completed: false},
	}

	if created := GenerateDueTasks(reminders, tasks, testNow); len(created) != 0 {
		t.Fatalf("expected no tasks, got %d", len(created))
	}
}

func TestGenerateDueTasksCompletedTaskDoesNotBlock(t *testing.T) {
	reminders := []models.Reminder{
		{ID: "r1", PlantID: "p1", Type: models.ReminderWatering, Frequency: 7, NextDue: day(0)},
	}
	tasks := []models.Task{
		{ID: "t1", ReminderID: "r1", PlantID: "p1", DueDate: day(-7), Completed: true, CompletedDate: day(-7)},
	}

	if created := GenerateDueTasks(reminders, tasks, testNow); len(created) != 1 {
		t.Fatalf("expected 1 task, got %d", len(created))
	}
}

func TestGenerateDueTasksIsIdempotent(t *testing.T) {
	reminders := []models.Reminder{
		{ID: "r1", PlantID: "p1", Type: models.ReminderWatering, Frequency: 7, NextDue: day(-1)},
	}

	first := GenerateDueTasks(reminders, nil, testNow)
	if len(first) != 1 {
		t.Fatalf("expected 1 task on first run, got %d", len(first))
	}

	// Second run against the snapshot that now contains the first batch.
	second := GenerateDueTasks(reminders, first, testNow)
	if len(second) != 0 {
		t.Fatalf("expected no duplicates on second run, got %d", len(second))
	}
}

func TestGenerateDueTasksUsesCustomName(t *testing.T) {
	reminders := []models.Reminder{
		{ID: "r1", PlantID: "p1", Type: models.ReminderOther, CustomName: "misting", Frequency: 2, NextDue: day(0)},
	}

	created := GenerateDueTasks(reminders, nil, testNow)
	if len(created) != 1 {
		t.Fatalf("expected 1 task, got %d", len(created))
	}
	if created[0].Type != "misting" {
		t.Fatalf("expected type %q, got %q", "misting", created[0].Type)
	}
}

func TestGenerateDueTasksSkipsUnparseableDate(t *testing.T) {
	reminders := []models.Reminder{
		{ID: "r1", PlantID: "p1", Type: models.ReminderWatering, Frequency: 7, NextDue: "not-a-date"},
		{ID: "r2", PlantID: "p1", Type: models.ReminderWatering, Frequency: 7, NextDue: ""},
	}

	if created := GenerateDueTasks(reminders, nil, testNow); len(created) != 0 {
		t.Fatalf("expected unparseable reminders to be skipped, got %d tasks", len(created))
	}
}
