package care

import (
	"testing"

	"growlytics/models"
)

func TestRecentActivityMergesAndCaps(t *testing.T) {
	var plants []models.Plant
	for i, id := range []string{"p1", "p2", "p3", "p4"} {
		plants = append(plants, models.Plant{ID: id, Name: "Plant " + id, DateAdded: day(-10 + i)})
	}
	var tasks []models.Task
	for i := 0; i < 6; i++ {
		tasks = append(tasks, models.Task{
			ID:            day(-i) + "-task",
			PlantID:       "p1",
			Type:          models.ReminderWatering,
			DueDate:       day(-i),
			Completed:     true,
			CompletedDate: day(-i),
		})
	}

	feed := RecentActivity(plants, tasks)
	if len(feed) != activityFeedSize {
		t.Fatalf("expected %d entries, got %d", activityFeedSize, len(feed))
	}
	for i := 1; i < len(feed); i++ {
		if feed[i].Date > feed[i-1].Date {
			t.Fatalf("feed not sorted newest first at index %d", i)
		}
	}
}

func TestRecentActivityLabelsOrphans(t *testing.T) {
	tasks := []models.Task{
		{ID: "t1", PlantID: "gone", Type: models.ReminderPruning, DueDate: day(-1), Completed: true, CompletedDate: day(-1)},
	}

	feed := RecentActivity(nil, tasks)
	if len(feed) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(feed))
	}
	if feed[0].PlantName != "Unknown Plant" {
		t.Errorf("PlantName = %q, want Unknown Plant", feed[0].PlantName)
	}
}

func TestRecentActivitySkipsUnparseableDates(t *testing.T) {
	plants := []models.Plant{{ID: "p1", Name: "Fern", DateAdded: "???"}}
	if feed := RecentActivity(plants, nil); len(feed) != 0 {
		t.Fatalf("expected empty feed, got %d entries", len(feed))
	}
}
