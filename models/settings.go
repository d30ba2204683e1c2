package models

// NotificationSettings toggles the channels a user wants to be nudged on.
type NotificationSettings struct {
	Email     bool `json:"email" bson:"email"`
	Push      bool `json:"push" bson:"push"`
	Reminders bool `json:"reminders" bson:"reminders"`
}

// PreferenceSettings holds display and default-behaviour preferences.
type PreferenceSettings struct {
	Theme                    string `json:"theme" bson:"theme"` // light, dark or system
	DefaultReminderFrequency int    `json:"defaultReminderFrequency" bson:"defaultReminderFrequency"`
	ShowCompletedTasks       bool   `json:"showCompletedTasks" bson:"showCompletedTasks"`
}

// UserSettings is the per-user singleton settings record.
type UserSettings struct {
	UserID        string               `json:"-" bson:"userId"`
	Notifications NotificationSettings `json:"notifications" bson:"notifications"`
	Preferences   PreferenceSettings   `json:"preferences" bson:"preferences"`
}

// DefaultSettings returns the settings applied to a user who has never
// saved any.
func DefaultSettings(userID string) UserSettings {
	return UserSettings{
		UserID: userID,
		Notifications: NotificationSettings{
			Email:     true,
			Push:      true,
			Reminders: true,
		},
		Preferences: PreferenceSettings{
			Theme:                    "system",
			DefaultReminderFrequency: 7,
			ShowCompletedTasks:       false,
		},
	}
}
