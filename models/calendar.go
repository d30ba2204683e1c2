package models

// CalendarEntry is a display-only row on the care calendar: either a
// persisted task or a synthetic future occurrence projected from a
// reminder.
type CalendarEntry struct {
	ID        string `json:"id"`
	PlantName string `json:"plantName"`
	Type      string `json:"type"`
	DueDate   string `json:"dueDate"`
	Completed bool   `json:"completed"`
	IsOverdue bool   `json:"isOverdue"`
	Projected bool   `json:"projected"`
}
