package models

// CareStats aggregates task completion numbers for the analytics and
// dashboard views.
type CareStats struct {
	TotalPlants       int `json:"totalPlants"`
	TotalTasks        int `json:"totalTasks"`
	CompletedTasks    int `json:"completedTasks"`
	CompletionRate    int `json:"completionRate"` // rounded percentage, 0 when no tasks
	CurrentStreak     int `json:"currentStreak"`
	ThisWeekCompleted int `json:"thisWeekCompleted"`
	DueToday          int `json:"dueToday"`
	Overdue           int `json:"overdue"`
	WateringTasks     int `json:"wateringTasks"`
	FertilizingTasks  int `json:"fertilizingTasks"`
}

// PlantPerformance is one plant's completion record, used for the
// descending performance ranking.
type PlantPerformance struct {
	PlantID        string `json:"plantId"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	TotalTasks     int    `json:"totalTasks"`
	CompletedTasks int    `json:"completedTasks"`
	CompletionRate int    `json:"completionRate"`
}

// Activity kinds for the recent-activity feed.
const (
	ActivityPlantAdded    = "plant_added"
	ActivityTaskCompleted = "task_completed"
)

// ActivityEntry is one row of the recent-activity feed.
type ActivityEntry struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	PlantName   string `json:"plantName"`
	TaskType    string `json:"taskType,omitempty"`
	Date        string `json:"date"`
	Description string `json:"description"`
}
