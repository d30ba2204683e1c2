package care

import (
	"time"

	"growlytics/models"
	"growlytics/utils"

	"github.com/google/uuid"
)

// GenerateDueTasks materializes due reminders into concrete tasks. A
// reminder with any incomplete task already referencing it is skipped
// regardless of date, so at most one task per reminder is ever pending.
// Reminders whose nextDue cannot be parsed are skipped. The returned
// tasks are not persisted here.
func GenerateDueTasks(reminders []models.Reminder, tasks []models.Task, now time.Time) []models.Task {
	pending := make(map[string]bool)
	for _, t := range tasks {
		if !t.Completed && t.ReminderID != "" {
			pending[t.ReminderID] = true
		}
	}

	var created []models.Task
	for _, r := range reminders {
		if pending[r.ID] {
			continue
		}
		due, ok := utils.ParseDate(r.NextDue)
		if !ok || due.After(now) {
			continue
		}
		created = append(created, models.Task{
			ID:         uuid.New().String(),
			UserID:     r.UserID,
			PlantID:    r.PlantID,
			ReminderID: r.ID,
			Type:       r.Label(),
			DueDate:    r.NextDue,
			Completed:  false,
		})
	}
	return created
}
