package models

// ExportBundle is the JSON document produced by a data export and accepted
// back on import. Plants, reminders and tasks are required on import;
// settings are optional.
type ExportBundle struct {
	Plants     []Plant       `json:"plants"`
	Reminders  []Reminder    `json:"reminders"`
	Tasks      []Task        `json:"tasks"`
	Settings   *UserSettings `json:"settings,omitempty"`
	ExportDate string        `json:"exportDate,omitempty"`
}
