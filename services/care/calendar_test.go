package care

import (
	"testing"
	"time"

	"growlytics/models"
	"growlytics/utils"
)

func countProjected(entries []models.CalendarEntry) int {
	n := 0
	for _, e := range entries {
		if e.Projected {
			n++
		}
	}
	return n
}

func TestProjectCalendarCapsSyntheticEntries(t *testing.T) {
	plants := []models.Plant{{ID: "p1", Name: "Fern"}}
	reminders := []models.Reminder{
		{ID: "r1", PlantID: "p1", Type: models.ReminderWatering, Frequency: 1, NextDue: day(0)},
	}

	entries := ProjectCalendar(plants, reminders, nil, testNow)
	if got := countProjected(entries); got != maxProjectedPerReminder {
		t.Fatalf("expected %d synthetic entries, got %d", maxProjectedPerReminder, got)
	}
}

func TestProjectCalendarStaysInsideWindow(t *testing.T) {
	plants := []models.Plant{{ID: "p1", Name: "Fern"}}
	reminders := []models.Reminder{
		{ID: "r1", PlantID: "p1", Type: models.ReminderWatering, Frequency: 30, NextDue: day(0)},
	}

	entries := ProjectCalendar(plants, reminders, nil, testNow)
	end := testNow.AddDate(0, projectionMonths, 0)
	for _, e := range entries {
		due, ok := utils.ParseDate(e.DueDate)
		if !ok {
			t.Fatalf("entry %q has unparseable due date %q", e.ID, e.DueDate)
		}
		if due.After(end) {
			t.Fatalf("entry %q at %s is beyond the window end %s", e.ID, due, end)
		}
	}
	// 30-day cadence inside 3 months: the due date plus three steps.
	if got := countProjected(entries); got != 4 {
		t.Fatalf("expected 4 synthetic entries, got %d", got)
	}
}

func TestProjectCalendarGuardsDegenerateFrequency(t *testing.T) {
	plants := []models.Plant{{ID: "p1", Name: "Fern"}}
	reminders := []models.Reminder{
		{ID: "r1", PlantID: "p1", Type: models.ReminderWatering, Frequency: 0, NextDue: day(0)},
		{ID: "r2", PlantID: "p1", Type: models.ReminderWatering, Frequency: -3, NextDue: day(0)},
	}

	entries := ProjectCalendar(plants, reminders, nil, testNow)
	if got := countProjected(entries); got != 0 {
		t.Fatalf("expected degenerate reminders to be skipped, got %d entries", got)
	}
}

func TestProjectCalendarSkipsDayWithPersistedTask(t *testing.T) {
	plants := []models.Plant{{ID: "p1", Name: "Fern"}}
	reminders := []models.Reminder{
		{ID: "r1", PlantID: "p1", Type: models.ReminderWatering, Frequency: 7, NextDue: day(0)},
	}
	tasks := []models.Task{
		{ID: "t1", PlantID: "p1", ReminderID: "r1", Type: models.ReminderWatering, DueDate: day(0)},
	}

	entries := ProjectCalendar(plants, reminders, tasks, testNow)
	for _, e := range entries {
		if !e.Projected {
			continue
		}
		due, _ := utils.ParseDate(e.DueDate)
		if utils.SameDay(due, testNow) {
			t.Fatalf("synthetic entry emitted on a day already covered by task t1")
		}
	}
}

func TestProjectCalendarSortsAscending(t *testing.T) {
	plants := []models.Plant{{ID: "p1", Name: "Fern"}}
	reminders := []models.Reminder{
		{ID: "r1", PlantID: "p1", Type: models.ReminderWatering, Frequency: 10, NextDue: day(2)},
	}
	tasks := []models.Task{
		{ID: "t1", PlantID: "p1", Type: models.ReminderPruning, DueDate: day(40)},
		{ID: "t2", PlantID: "p1", Type: models.ReminderPruning, DueDate: day(-5)},
	}

	entries := ProjectCalendar(plants, reminders, tasks, testNow)
	var prev time.Time
	for i, e := range entries {
		due, _ := utils.ParseDate(e.DueDate)
		if i > 0 && due.Before(prev) {
			t.Fatalf("entries out of order at index %d", i)
		}
		prev = due
	}
}

func TestProjectCalendarHandlesOrphans(t *testing.T) {
	// Plant deleted: its task is labeled, its reminder stops projecting.
	reminders := []models.Reminder{
		{ID: "r1", PlantID: "gone", Type: models.ReminderWatering, Frequency: 7, NextDue: day(0)},
	}
	tasks := []models.Task{
		{ID: "t1", PlantID: "gone", ReminderID: "r1", Type: models.ReminderWatering, DueDate: day(0)},
	}

	entries := ProjectCalendar(nil, reminders, tasks, testNow)
	if len(entries) != 1 {
		t.Fatalf("expected only the persisted task, got %d entries", len(entries))
	}
	if entries[0].PlantName != "Unknown Plant" {
		t.Fatalf("expected orphan task labeled Unknown Plant, got %q", entries[0].PlantName)
	}
}

func TestProjectCalendarMarksOverdue(t *testing.T) {
	plants := []models.Plant{{ID: "p1", Name: "Fern"}}
	tasks := []models.Task{
		{ID: "t1", PlantID: "p1", Type: models.ReminderWatering, DueDate: day(-2)},
		{ID: "t2", PlantID: "p1", Type: models.ReminderWatering, DueDate: day(-2), Completed: true, CompletedDate: day(-2)},
	}

	entries := ProjectCalendar(plants, nil, tasks, testNow)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.ID == "t1" && !e.IsOverdue {
			t.Fatalf("expected t1 to be overdue")
		}
		if e.ID == "t2" && e.IsOverdue {
			t.Fatalf("completed task must not be overdue")
		}
	}
}
