package handlers

import (
	"net/http"

	"growlytics/middleware"
	"growlytics/models"
	"growlytics/utils"

	"github.com/gin-gonic/gin"
)

// ListRemindersHandler returns the user's care reminders.
func (hb *HandlerBundle) ListRemindersHandler(c *gin.Context) {
	reminders, err := hb.Reminders.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to fetch reminders", err.Error())
		return
	}
	c.JSON(http.StatusOK, reminders)
}

// CreateReminderHandler registers a recurring care rule.
func (hb *HandlerBundle) CreateReminderHandler(c *gin.Context) {
	var reminder models.Reminder
	if err := c.ShouldBindJSON(&reminder); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	created, err := hb.Reminders.Create(c.Request.Context(), middleware.UserID(c), reminder)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to create reminder", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateReminderHandler replaces a reminder's fields.
func (hb *HandlerBundle) UpdateReminderHandler(c *gin.Context) {
	var reminder models.Reminder
	if err := c.ShouldBindJSON(&reminder); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	reminder.ID = c.Param("id")

	updated, err := hb.Reminders.Update(c.Request.Context(), middleware.UserID(c), reminder)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to update reminder", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteReminderHandler removes a reminder and its pending tasks.
func (hb *HandlerBundle) DeleteReminderHandler(c *gin.Context) {
	if err := hb.Reminders.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to delete reminder", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
