package handlers

import (
	"net/http"
	"time"

	"growlytics/middleware"
	"growlytics/services/care"
	"growlytics/utils"

	"github.com/gin-gonic/gin"
)

// GetCalendarHandler projects the care schedule from now through the
// next three months, mixing persisted tasks with synthetic occurrences.
func (hb *HandlerBundle) GetCalendarHandler(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)

	plants, err := hb.PlantRepo.GetAll(ctx, userID)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to load calendar", err.Error())
		return
	}
	reminders, err := hb.ReminderRepo.GetAll(ctx, userID)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to load calendar", err.Error())
		return
	}
	tasks, err := hb.TaskRepo.GetAll(ctx, userID)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to load calendar", err.Error())
		return
	}

	entries := care.ProjectCalendar(plants, reminders, tasks, time.Now())
	c.JSON(http.StatusOK, entries)
}
