package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"growlytics/middleware"
	"growlytics/models"
	"growlytics/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListPlantsHandler returns the user's full plant collection.
func (hb *HandlerBundle) ListPlantsHandler(c *gin.Context) {
	plants, err := hb.Plants.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to fetch plants", err.Error())
		return
	}
	c.JSON(http.StatusOK, plants)
}

// GetPlantHandler returns one plant by ID.
func (hb *HandlerBundle) GetPlantHandler(c *gin.Context) {
	plant, err := hb.Plants.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plant)
}

// CreatePlantHandler adds a plant to the collection.
func (hb *HandlerBundle) CreatePlantHandler(c *gin.Context) {
	var plant models.Plant
	if err := c.ShouldBindJSON(&plant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	created, err := hb.Plants.Create(c.Request.Context(), middleware.UserID(c), plant)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to create plant", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdatePlantHandler replaces a plant's editable fields.
func (hb *HandlerBundle) UpdatePlantHandler(c *gin.Context) {
	var plant models.Plant
	if err := c.ShouldBindJSON(&plant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	plant.ID = c.Param("id")

	updated, err := hb.Plants.Update(c.Request.Context(), middleware.UserID(c), plant)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to update plant", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePlantHandler removes a plant and its reminders and tasks.
func (hb *HandlerBundle) DeletePlantHandler(c *gin.Context) {
	if err := hb.Plants.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to delete plant", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// UploadPlantPhotoHandler accepts a multipart photo upload, stores it and
// saves the delivery URL on the plant.
func (hb *HandlerBundle) UploadPlantPhotoHandler(c *gin.Context) {
	if hb.Storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Photo storage is not configured"})
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing photo file"})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to store upload", err.Error())
		return
	}
	defer os.Remove(tmpPath)

	publicID, err := hb.Storage.UploadFile(c.Request.Context(), tmpPath, "plants")
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Photo upload failed", err.Error())
		return
	}
	url, err := hb.Storage.DownloadURL(publicID)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Photo upload failed", err.Error())
		return
	}

	plant, err := hb.Plants.SetPhoto(c.Request.Context(), middleware.UserID(c), c.Param("id"), url)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to save photo", err.Error())
		return
	}

	utils.GetLogger().Info("plant photo uploaded",
		zap.String("plantId", plant.ID), zap.String("publicId", publicID))
	c.JSON(http.StatusOK, plant)
}
