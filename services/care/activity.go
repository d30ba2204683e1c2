package care

import (
	"fmt"
	"sort"

	"growlytics/models"
	"growlytics/utils"
)

const activityFeedSize = 5

// RecentActivity merges the three most recently added plants with the
// five most recently completed tasks into a single feed, newest first,
// capped at five rows. Records without a parseable date are left out.
func RecentActivity(plants []models.Plant, tasks []models.Task) []models.ActivityEntry {
	plantsByID := indexPlants(plants)

	type dated struct {
		entry models.ActivityEntry
		at    int64
	}
	var added, completed []dated

	for _, p := range plants {
		at, ok := utils.ParseDate(p.DateAdded)
		if !ok {
			continue
		}
		added = append(added, dated{
			entry: models.ActivityEntry{
				ID:          p.ID,
				Kind:        models.ActivityPlantAdded,
				PlantName:   p.Name,
				Date:        utils.FormatDate(at),
				Description: fmt.Sprintf("Added %s to your garden", p.Name),
			},
			at: at.UnixMilli(),
		})
	}

	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		at, ok := utils.ParseDate(t.EffectiveDate())
		if !ok {
			continue
		}
		name := "Unknown Plant"
		if p, found := plantsByID[t.PlantID]; found {
			name = p.Name
		}
		completed = append(completed, dated{
			entry: models.ActivityEntry{
				ID:          t.ID,
				Kind:        models.ActivityTaskCompleted,
				PlantName:   name,
				TaskType:    t.Type,
				Date:        utils.FormatDate(at),
				Description: fmt.Sprintf("Completed %s for %s", t.Type, name),
			},
			at: at.UnixMilli(),
		})
	}

	newestFirst := func(s []dated) {
		sort.SliceStable(s, func(i, j int) bool { return s[i].at > s[j].at })
	}
	newestFirst(added)
	newestFirst(completed)
	if len(added) > 3 {
		added = added[:3]
	}
	if len(completed) > 5 {
		completed = completed[:5]
	}

	merged := append(added, completed...)
	newestFirst(merged)
	if len(merged) > activityFeedSize {
		merged = merged[:activityFeedSize]
	}

	feed := make([]models.ActivityEntry, 0, len(merged))
	for _, d := range merged {
		feed = append(feed, d.entry)
	}
	return feed
}
