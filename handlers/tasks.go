package handlers

import (
	"net/http"

	"growlytics/middleware"
	"growlytics/models"
	"growlytics/utils"

	"github.com/gin-gonic/gin"
)

// ListTasksHandler materializes due reminders into tasks and returns the
// full task list. The refresh runs inline; there is no scheduler.
func (hb *HandlerBundle) ListTasksHandler(c *gin.Context) {
	tasks, err := hb.Tasks.Refresh(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to fetch tasks", err.Error())
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateTaskHandler adds an ad hoc care task.
func (hb *HandlerBundle) CreateTaskHandler(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	created, err := hb.Tasks.Create(c.Request.Context(), middleware.UserID(c), task)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to create task", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// CompleteTaskHandler marks a task done and reschedules its reminder.
func (hb *HandlerBundle) CompleteTaskHandler(c *gin.Context) {
	done, err := hb.Tasks.Complete(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		if done != nil {
			// Task completed but the reminder reschedule failed; report
			// the partial outcome instead of pretending nothing happened.
			c.JSON(http.StatusBadGateway, gin.H{
				"task":  done,
				"error": "task completed but reminder was not rescheduled",
			})
			return
		}
		utils.JSONError(c, utils.StatusForError(err), "Failed to complete task", err.Error())
		return
	}
	c.JSON(http.StatusOK, done)
}

// DeleteTaskHandler removes a task.
func (hb *HandlerBundle) DeleteTaskHandler(c *gin.Context) {
	if err := hb.Tasks.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to delete task", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
