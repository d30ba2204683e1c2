package models

// Reminder care types.
const (
	ReminderWatering    = "watering"
	ReminderFertilizing = "fertilizing"
	ReminderPruning     = "pruning"
	ReminderRepotting   = "repotting"
	ReminderOther       = "other"
)

// ValidReminderType reports whether t is one of the built-in care types.
func ValidReminderType(t string) bool {
	switch t {
	case ReminderWatering, ReminderFertilizing, ReminderPruning, ReminderRepotting, ReminderOther:
		return true
	}
	return false
}

// Reminder is a recurring care rule for a plant. Frequency is whole days
// and must be at least 1.
type Reminder struct {
	ID         string `json:"id" bson:"id"`
	UserID     string `json:"-" bson:"userId"`
	PlantID    string `json:"plantId" bson:"plantId"`
	Type       string `json:"type" bson:"type"`
	Frequency  int    `json:"frequency" bson:"frequency"`
	NextDue    string `json:"nextDue" bson:"nextDue"`
	LastDone   string `json:"lastDone,omitempty" bson:"lastDone,omitempty"`
	CustomName string `json:"customName,omitempty" bson:"customName,omitempty"`
}

// Label returns the display label for the reminder, preferring the custom
// name over the built-in type.
func (r Reminder) Label() string {
	if r.CustomName != "" {
		return r.CustomName
	}
	return r.Type
}
