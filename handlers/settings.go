package handlers

import (
	"net/http"

	"growlytics/middleware"
	"growlytics/models"
	"growlytics/utils"

	"github.com/gin-gonic/gin"
)

// GetSettingsHandler returns the user's settings, falling back to the
// defaults when none were ever saved.
func (hb *HandlerBundle) GetSettingsHandler(c *gin.Context) {
	settings, err := hb.Settings.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to fetch settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, settings)
}

// SaveSettingsHandler replaces the user's settings record.
func (hb *HandlerBundle) SaveSettingsHandler(c *gin.Context) {
	var settings models.UserSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	saved, err := hb.Settings.Save(c.Request.Context(), middleware.UserID(c), settings)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to save settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, saved)
}
