package care

import (
	"math"
	"sort"
	"time"

	"growlytics/models"
	"growlytics/utils"
)

// streakLookback caps how many days the streak walk goes back.
const streakLookback = 30

// CalculateStreak counts consecutive calendar days, walking backward from
// today, on which at least one task was completed. A task-free today does
// not break a streak in progress; the walk then starts at yesterday. The
// walk stops at the first gap or after 30 days.
func CalculateStreak(tasks []models.Task, now time.Time) int {
	days := make(map[string]bool)
	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		if d, ok := utils.ParseDate(t.EffectiveDate()); ok {
			days[dayKey(d)] = true
		}
	}
	if len(days) == 0 {
		return 0
	}

	cur := utils.StartOfDay(now)
	if !days[dayKey(cur)] {
		cur = cur.AddDate(0, 0, -1)
	}

	streak := 0
	for i := 0; i < streakLookback; i++ {
		if !days[dayKey(cur)] {
			break
		}
		streak++
		cur = cur.AddDate(0, 0, -1)
	}
	return streak
}

// completionRate is completed/total as a rounded percentage, 0 when there
// are no tasks at all.
func completionRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// ComputeStats aggregates the dashboard and analytics numbers from the
// full task collection.
func ComputeStats(plants []models.Plant, tasks []models.Task, now time.Time) models.CareStats {
	stats := models.CareStats{
		TotalPlants: len(plants),
		TotalTasks:  len(tasks),
	}

	weekAgo := now.AddDate(0, 0, -7)
	for _, t := range tasks {
		switch t.Type {
		case models.ReminderWatering:
			stats.WateringTasks++
		case models.ReminderFertilizing:
			stats.FertilizingTasks++
		}

		if t.Completed {
			stats.CompletedTasks++
			if d, ok := utils.ParseDate(t.EffectiveDate()); ok && !d.Before(weekAgo) {
				stats.ThisWeekCompleted++
			}
			continue
		}

		due, ok := utils.ParseDate(t.DueDate)
		if !ok {
			continue
		}
		if utils.SameDay(due, now) {
			stats.DueToday++
		}
		if due.Before(now) {
			stats.Overdue++
		}
	}

	stats.CompletionRate = completionRate(stats.CompletedTasks, stats.TotalTasks)
	stats.CurrentStreak = CalculateStreak(tasks, now)
	return stats
}

// PlantPerformanceRanking computes each plant's completion rate, sorted
// descending.
func PlantPerformanceRanking(plants []models.Plant, tasks []models.Task) []models.PlantPerformance {
	byPlant := make(map[string][]models.Task)
	for _, t := range tasks {
		byPlant[t.PlantID] = append(byPlant[t.PlantID], t)
	}

	ranking := make([]models.PlantPerformance, 0, len(plants))
	for _, p := range plants {
		perf := models.PlantPerformance{PlantID: p.ID, Name: p.Name, Type: p.Type}
		for _, t := range byPlant[p.ID] {
			perf.TotalTasks++
			if t.Completed {
				perf.CompletedTasks++
			}
		}
		perf.CompletionRate = completionRate(perf.CompletedTasks, perf.TotalTasks)
		ranking = append(ranking, perf)
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].CompletionRate > ranking[j].CompletionRate
	})
	return ranking
}
