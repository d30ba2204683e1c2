// Package care derives the task list, calendar, statistics and insights
// from a user's plants, reminders and tasks. Every function here is a
// pure, synchronous computation over already-fetched snapshots; the
// persistence side effects live in the owning services.
package care

import (
	"time"

	"growlytics/models"
)

// indexPlants builds an id keyed lookup once per update cycle so the
// derivations below never scan the plant list per record.
func indexPlants(plants []models.Plant) map[string]models.Plant {
	idx := make(map[string]models.Plant, len(plants))
	for _, p := range plants {
		idx[p.ID] = p
	}
	return idx
}

// dayKey collapses a timestamp to its calendar day.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
