package handlers

import (
	"fmt"
	"net/http"
	"time"

	"growlytics/middleware"
	"growlytics/models"
	"growlytics/utils"

	"github.com/gin-gonic/gin"
)

// ExportDataHandler returns the user's full dataset as a downloadable
// JSON bundle.
func (hb *HandlerBundle) ExportDataHandler(c *gin.Context) {
	bundle, err := hb.Export.Export(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Export failed", err.Error())
		return
	}

	filename := fmt.Sprintf("growlytics-export-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.JSON(http.StatusOK, bundle)
}

// ImportDataHandler replaces the user's dataset with an uploaded bundle.
func (hb *HandlerBundle) ImportDataHandler(c *gin.Context) {
	var bundle models.ExportBundle
	if err := c.ShouldBindJSON(&bundle); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid export bundle"})
		return
	}

	if err := hb.Export.Import(c.Request.Context(), middleware.UserID(c), bundle); err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Import failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "imported"})
}
