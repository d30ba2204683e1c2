package care

import (
	"testing"

	"growlytics/models"
)

func completedOn(id string, offset int) models.Task {
	return models.Task{
		ID:            id,
		PlantID:       "p1",
		Type:          models.ReminderWatering,
		DueDate:       day(offset),
		Completed:     true,
		CompletedDate: day(offset),
	}
}

func TestCalculateStreakConsecutiveDays(t *testing.T) {
	tasks := []models.Task{
		completedOn("t1", 0),
		completedOn("t2", -1),
		completedOn("t3", -2),
	}
	if got := CalculateStreak(tasks, testNow); got != 3 {
		t.Errorf("streak = %d, want 3", got)
	}
}

func TestCalculateStreakBreaksAtFirstGap(t *testing.T) {
	// Nothing today or yesterday: the streak is over.
	tasks := []models.Task{completedOn("t1", -2)}
	if got := CalculateStreak(tasks, testNow); got != 0 {
		t.Errorf("streak = %d, want 0", got)
	}
}

func TestCalculateStreakTodayMissingStartsYesterday(t *testing.T) {
	tasks := []models.Task{
		completedOn("t1", -1),
		completedOn("t2", -2),
	}
	if got := CalculateStreak(tasks, testNow); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

func TestCalculateStreakCappedAtThirtyDays(t *testing.T) {
	var tasks []models.Task
	for i := 0; i < 45; i++ {
		tasks = append(tasks, completedOn(day(-i), -i))
	}
	if got := CalculateStreak(tasks, testNow); got != 30 {
		t.Errorf("streak = %d, want 30", got)
	}
}

func TestCalculateStreakNoCompletions(t *testing.T) {
	tasks := []models.Task{
		{ID: "t1", DueDate: day(0), Completed: false},
	}
	if got := CalculateStreak(tasks, testNow); got != 0 {
		t.Errorf("streak = %d, want 0", got)
	}
}

func TestCalculateStreakFallsBackToDueDate(t *testing.T) {
	tasks := []models.Task{
		{ID: "t1", DueDate: day(0), Completed: true}, // no completedDate stamp
	}
	if got := CalculateStreak(tasks, testNow); got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}
}

func TestComputeStatsCompletionRate(t *testing.T) {
	if got := ComputeStats(nil, nil, testNow).CompletionRate; got != 0 {
		t.Errorf("empty completion rate = %d, want 0", got)
	}

	tasks := []models.Task{
		completedOn("t1", -1),
		completedOn("t2", -2),
		completedOn("t3", -3),
		{ID: "t4", PlantID: "p1", Type: models.ReminderWatering, DueDate: day(1)},
	}
	if got := ComputeStats(nil, tasks, testNow).CompletionRate; got != 75 {
		t.Errorf("completion rate = %d, want 75", got)
	}
}

func TestComputeStatsCounters(t *testing.T) {
	plants := []models.Plant{{ID: "p1", Name: "Fern"}, {ID: "p2", Name: "Cactus"}}
	tasks := []models.Task{
		completedOn("t1", -1),
		{ID: "t2", PlantID: "p1", Type: models.ReminderWatering, DueDate: day(-2)}, // overdue
		{ID: "t3", PlantID: "p2", Type: models.ReminderFertilizing, DueDate: day(0)},
		{ID: "t4", PlantID: "p2", Type: models.ReminderWatering, DueDate: "garbage"},
	}

	stats := ComputeStats(plants, tasks, testNow)
	if stats.TotalPlants != 2 {
		t.Errorf("TotalPlants = %d, want 2", stats.TotalPlants)
	}
	if stats.Overdue != 1 {
		t.Errorf("Overdue = %d, want 1", stats.Overdue)
	}
	if stats.DueToday != 1 {
		t.Errorf("DueToday = %d, want 1", stats.DueToday)
	}
	if stats.WateringTasks != 3 {
		t.Errorf("WateringTasks = %d, want 3", stats.WateringTasks)
	}
	if stats.FertilizingTasks != 1 {
		t.Errorf("FertilizingTasks = %d, want 1", stats.FertilizingTasks)
	}
	if stats.ThisWeekCompleted != 1 {
		t.Errorf("ThisWeekCompleted = %d, want 1", stats.ThisWeekCompleted)
	}
}

func TestPlantPerformanceRankingSortsDescending(t *testing.T) {
	plants := []models.Plant{
		{ID: "p1", Name: "Fern"},
		{ID: "p2", Name: "Cactus"},
	}
	tasks := []models.Task{
		{ID: "t1", PlantID: "p1", DueDate: day(-1), Completed: true, CompletedDate: day(-1)},
		{ID: "t2", PlantID: "p1", DueDate: day(0)},
		{ID: "t3", PlantID: "p2", DueDate: day(-1), Completed: true, CompletedDate: day(-1)},
	}

	ranking := PlantPerformanceRanking(plants, tasks)
	if len(ranking) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(ranking))
	}
	if ranking[0].PlantID != "p2" || ranking[0].CompletionRate != 100 {
		t.Errorf("first = %s at %d%%, want p2 at 100%%", ranking[0].PlantID, ranking[0].CompletionRate)
	}
	if ranking[1].PlantID != "p1" || ranking[1].CompletionRate != 50 {
		t.Errorf("second = %s at %d%%, want p1 at 50%%", ranking[1].PlantID, ranking[1].CompletionRate)
	}
}

func TestPlantPerformanceIgnoresOrphanTasks(t *testing.T) {
	plants := []models.Plant{{ID: "p1", Name: "Fern"}}
	tasks := []models.Task{
		{ID: "t1", PlantID: "gone", DueDate: day(-1), Completed: true, CompletedDate: day(-1)},
	}

	ranking := PlantPerformanceRanking(plants, tasks)
	if len(ranking) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(ranking))
	}
	if ranking[0].TotalTasks != 0 {
		t.Errorf("TotalTasks = %d, want 0", ranking[0].TotalTasks)
	}
}
