package care

import (
	"fmt"
	"sort"
	"time"

	"growlytics/models"
	"growlytics/utils"
)

const (
	// projectionMonths bounds the look-ahead window.
	projectionMonths = 3
	// maxProjectedPerReminder caps synthetic occurrences per reminder so
	// projection terminates even on degenerate data.
	maxProjectedPerReminder = 50
)

// ProjectCalendar produces the calendar view: every persisted task plus
// synthetic future occurrences of each reminder, from now through
// now + 3 months, sorted ascending by due date. A synthetic occurrence is
// suppressed when a persisted task for the same reminder already lands on
// that calendar day. Tasks whose plant is gone are labeled rather than
// hidden; reminders whose plant is gone are skipped so deleted plants stop
// generating future work.
func ProjectCalendar(plants []models.Plant, reminders []models.Reminder, tasks []models.Task, now time.Time) []models.CalendarEntry {
	plantsByID := indexPlants(plants)
	end := now.AddDate(0, projectionMonths, 0)
	entries := []models.CalendarEntry{}

	// Persisted task days per reminder, for same-day dedupe below.
	taskDays := make(map[string]map[string]bool)
	for _, t := range tasks {
		due, ok := utils.ParseDate(t.DueDate)
		if !ok {
			continue
		}
		if t.ReminderID != "" {
			if taskDays[t.ReminderID] == nil {
				taskDays[t.ReminderID] = make(map[string]bool)
			}
			taskDays[t.ReminderID][dayKey(due)] = true
		}

		name := "Unknown Plant"
		if p, found := plantsByID[t.PlantID]; found {
			name = p.Name
		}
		entries = append(entries, models.CalendarEntry{
			ID:        t.ID,
			PlantName: name,
			Type:      t.Type,
			DueDate:   utils.FormatDate(due),
			Completed: t.Completed,
			IsOverdue: !t.Completed && due.Before(now),
		})
	}

	for _, r := range reminders {
		p, found := plantsByID[r.PlantID]
		if !found {
			continue
		}
		// Frequency below one day would never advance the cursor.
		if r.Frequency < 1 {
			continue
		}
		next, ok := utils.ParseDate(r.NextDue)
		if !ok {
			continue
		}

		count := 0
		for !next.After(end) && count < maxProjectedPerReminder {
			if !taskDays[r.ID][dayKey(next)] {
				entries = append(entries, models.CalendarEntry{
					ID:        fmt.Sprintf("future-%s-%d", r.ID, next.UnixMilli()),
					PlantName: p.Name,
					Type:      r.Label(),
					DueDate:   utils.FormatDate(next),
					Projected: true,
				})
				count++
			}
			next = next.AddDate(0, 0, r.Frequency)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		ti, _ := utils.ParseDate(entries[i].DueDate)
		tj, _ := utils.ParseDate(entries[j].DueDate)
		return ti.Before(tj)
	})
	return entries
}
