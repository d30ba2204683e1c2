package care

import (
	"fmt"
	"sort"
	"time"

	"growlytics/models"
	"growlytics/utils"
)

// maxInsights caps the advisory list; rule order is the priority, the cut
// is a plain truncation.
const maxInsights = 4

// GenerateInsights evaluates a fixed, ordered rule list against the
// user's collection and care history and returns at most four advisory
// messages.
func GenerateInsights(plants []models.Plant, reminders []models.Reminder, tasks []models.Task, now time.Time) []models.Insight {
	insights := []models.Insight{}

	var completed, overdue []models.Task
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
			continue
		}
		if due, ok := utils.ParseDate(t.DueDate); ok && due.Before(now) {
			overdue = append(overdue, t)
		}
	}

	// Growing collection.
	if len(plants) >= 3 {
		insights = append(insights, models.Insight{
			ID:      "collection-tip",
			Type:    models.InsightTip,
			Title:   "Growing Collection",
			Message: fmt.Sprintf("You have %d plants! Consider grouping plants with similar care needs together to make maintenance easier.", len(plants)),
		})
	}

	// Watering cadence over the last five completed watering tasks.
	if avg, ok := recentWateringGap(completed); ok {
		if avg <= 3 {
			insights = append(insights, models.Insight{
				ID:      "watering-frequency",
				Type:    models.InsightWarning,
				Title:   "Frequent Watering",
				Message: "You've been watering quite frequently. Make sure to check soil moisture before watering to avoid overwatering.",
			})
		} else if avg >= 10 {
			insights = append(insights, models.Insight{
				ID:      "watering-spacing",
				Type:    models.InsightInfo,
				Title:   "Watering Schedule",
				Message: "You have good spacing between watering sessions. This helps prevent root rot and promotes healthy growth.",
			})
		}
	}

	// Overdue watering.
	overdueWatering := 0
	for _, t := range overdue {
		if t.Type == models.ReminderWatering {
			overdueWatering++
		}
	}
	if overdueWatering > 0 {
		plural := " needs"
		if overdueWatering > 1 {
			plural = "s need"
		}
		insights = append(insights, models.Insight{
			ID:      "overdue-watering",
			Type:    models.InsightWarning,
			Title:   "Watering Overdue",
			Message: fmt.Sprintf("%d plant%s watering. Check soil moisture and water if dry.", overdueWatering, plural),
		})
	}

	// Consistent on-time care across the last ten completions.
	if len(completed) >= 10 && onTimeCount(lastByDate(completed, 10)) >= 8 {
		insights = append(insights, models.Insight{
			ID:      "consistent-care",
			Type:    models.InsightSuccess,
			Title:   "Excellent Care!",
			Message: "You've been very consistent with plant care. Your plants are thriving thanks to your dedication!",
		})
	}

	// Per-plant nudges, in collection order.
	completedByPlant := make(map[string]int)
	for _, t := range completed {
		completedByPlant[t.PlantID]++
	}
	remindersByPlant := make(map[string]int)
	for _, r := range reminders {
		remindersByPlant[r.PlantID]++
	}
	for _, p := range plants {
		addedAt, ok := utils.ParseDate(p.DateAdded)
		if !ok {
			continue
		}
		age := now.Sub(addedAt).Hours() / 24

		if age <= 7 && completedByPlant[p.ID] == 0 {
			insights = append(insights, models.Insight{
				ID:      "new-plant-" + p.ID,
				Type:    models.InsightTip,
				Title:   "New Plant Care",
				Message: fmt.Sprintf("%s is new to your collection. Monitor it closely for the first few weeks to establish a good care routine.", p.Name),
				PlantID: p.ID,
			})
		}

		if remindersByPlant[p.ID] == 0 && age > 1 {
			insights = append(insights, models.Insight{
				ID:      "no-reminders-" + p.ID,
				Type:    models.InsightInfo,
				Title:   "Set Up Reminders",
				Message: fmt.Sprintf("Consider setting up care reminders for %s to maintain a consistent care schedule.", p.Name),
				PlantID: p.ID,
			})
		}
	}

	insights = append(insights, seasonalInsight(now))

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

// lastByDate returns the n most recent tasks by effective date, oldest
// first. Tasks without a parseable date are excluded.
func lastByDate(tasks []models.Task, n int) []models.Task {
	type dated struct {
		task models.Task
		at   int64
	}
	var ds []dated
	for _, t := range tasks {
		if at, ok := utils.ParseDate(t.EffectiveDate()); ok {
			ds = append(ds, dated{task: t, at: at.UnixMilli()})
		}
	}
	sort.SliceStable(ds, func(i, j int) bool { return ds[i].at < ds[j].at })
	if len(ds) > n {
		ds = ds[len(ds)-n:]
	}
	out := make([]models.Task, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.task)
	}
	return out
}

// recentWateringGap averages the day gaps between the five most recent
// completed watering tasks. The second return value is false when fewer
// than five are available.
func recentWateringGap(completed []models.Task) (float64, bool) {
	var watering []models.Task
	for _, t := range completed {
		if t.Type == models.ReminderWatering {
			watering = append(watering, t)
		}
	}
	recent := lastByDate(watering, 5)
	if len(recent) < 5 {
		return 0, false
	}

	var total float64
	for i := 1; i < len(recent); i++ {
		prev, _ := utils.ParseDate(recent[i-1].EffectiveDate())
		curr, _ := utils.ParseDate(recent[i].EffectiveDate())
		total += curr.Sub(prev).Hours() / 24
	}
	return total / float64(len(recent)-1), true
}

// onTimeCount counts completions stamped no later than their due date.
func onTimeCount(tasks []models.Task) int {
	n := 0
	for _, t := range tasks {
		due, ok := utils.ParseDate(t.DueDate)
		if !ok {
			continue
		}
		done, ok := utils.ParseDate(t.EffectiveDate())
		if !ok {
			continue
		}
		if !done.After(due) {
			n++
		}
	}
	return n
}

// seasonalInsight buckets the month into a coarse season: Mar-May spring,
// Jun-Aug summer, Sep-Nov fall, else winter.
func seasonalInsight(now time.Time) models.Insight {
	switch m := now.Month(); {
	case m >= time.March && m <= time.May:
		return models.Insight{
			ID:      "seasonal-spring",
			Type:    models.InsightTip,
			Title:   "Spring Growth Season",
			Message: "Spring is here! This is the perfect time to increase watering frequency and start fertilizing as plants enter their growing season.",
		}
	case m >= time.June && m <= time.August:
		return models.Insight{
			ID:      "seasonal-summer",
			Type:    models.InsightTip,
			Title:   "Summer Care",
			Message: "Summer heat means plants may need more frequent watering. Check soil moisture regularly and provide shade for sensitive plants.",
		}
	case m >= time.September && m <= time.November:
		return models.Insight{
			ID:      "seasonal-fall",
			Type:    models.InsightTip,
			Title:   "Fall Preparation",
			Message: "As temperatures drop, reduce watering frequency and stop fertilizing most plants to prepare them for winter dormancy.",
		}
	default:
		return models.Insight{
			ID:      "seasonal-winter",
			Type:    models.InsightTip,
			Title:   "Winter Care",
			Message: "Winter means slower growth and less water needs. Reduce watering frequency and watch for dry air affecting your plants.",
		}
	}
}
