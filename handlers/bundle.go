package handlers

import (
	plantRepo "growlytics/database/repository/plant"
	reminderRepo "growlytics/database/repository/reminder"
	settingsRepo "growlytics/database/repository/settings"
	taskRepo "growlytics/database/repository/task"
	"growlytics/services/export"
	plantSvc "growlytics/services/plant"
	reminderSvc "growlytics/services/reminder"
	settingsSvc "growlytics/services/settings"
	"growlytics/services/storage"
	"growlytics/services/stream"
	taskSvc "growlytics/services/task"
	"growlytics/services/user"
)

// HandlerBundle groups all endpoint handlers and their dependencies.
type HandlerBundle struct {
	Plants    plantSvc.PlantService
	Reminders reminderSvc.ReminderService
	Tasks     taskSvc.TaskService
	Settings  settingsSvc.SettingsService
	Users     user.UserService
	Export    export.ExportService
	Storage   storage.StorageService
	Hub       *stream.Hub

	// Raw repos for read paths that compose several collections
	// (dashboard, calendar, analytics, streaming snapshots).
	PlantRepo    plantRepo.PlantRepository
	ReminderRepo reminderRepo.ReminderRepository
	TaskRepo     taskRepo.TaskRepository
	SettingsRepo settingsRepo.SettingsRepository
}
