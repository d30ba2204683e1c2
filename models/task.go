package models

// Task is one concrete, datable occurrence of care, either materialized
// from a reminder or created ad hoc. Completed tasks carry a
// completedDate; the due date is used as the effective date when the
// completion stamp is missing.
type Task struct {
	ID            string `json:"id" bson:"id"`
	UserID        string `json:"-" bson:"userId"`
	PlantID       string `json:"plantId" bson:"plantId"`
	ReminderID    string `json:"reminderId" bson:"reminderId"`
	Type          string `json:"type" bson:"type"`
	DueDate       string `json:"dueDate" bson:"dueDate"`
	Completed     bool   `json:"completed" bson:"completed"`
	CompletedDate string `json:"completedDate,omitempty" bson:"completedDate,omitempty"`
}

// EffectiveDate returns the completion stamp when present, else the due
// date.
func (t Task) EffectiveDate() string {
	if t.CompletedDate != "" {
		return t.CompletedDate
	}
	return t.DueDate
}
