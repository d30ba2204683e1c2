package handlers

import (
	"net/http"
	"time"

	"growlytics/middleware"
	"growlytics/models"
	"growlytics/services/care"
	"growlytics/utils"

	"github.com/gin-gonic/gin"
)

// AnalyticsReport is the stats page payload.
type AnalyticsReport struct {
	Stats       models.CareStats          `json:"stats"`
	Streak      int                       `json:"streak"`
	Performance []models.PlantPerformance `json:"performance"`
	Insights    []models.Insight          `json:"insights"`
}

// GetAnalyticsHandler computes care statistics over the stored history.
func (hb *HandlerBundle) GetAnalyticsHandler(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)

	plants, err := hb.PlantRepo.GetAll(ctx, userID)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to load analytics", err.Error())
		return
	}
	reminders, err := hb.ReminderRepo.GetAll(ctx, userID)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to load analytics", err.Error())
		return
	}
	tasks, err := hb.TaskRepo.GetAll(ctx, userID)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to load analytics", err.Error())
		return
	}

	now := time.Now()
	report := AnalyticsReport{
		Stats:       care.ComputeStats(plants, tasks, now),
		Streak:      care.CalculateStreak(tasks, now),
		Performance: care.PlantPerformanceRanking(plants, tasks),
		Insights:    care.GenerateInsights(plants, reminders, tasks, now),
	}
	c.JSON(http.StatusOK, report)
}
