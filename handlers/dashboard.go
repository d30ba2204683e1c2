package handlers

import (
	"net/http"
	"sort"
	"time"

	"growlytics/middleware"
	"growlytics/models"
	"growlytics/services/care"
	"growlytics/utils"

	"github.com/gin-gonic/gin"
)

// DashboardSummary is everything the home screen shows in one response.
type DashboardSummary struct {
	Stats    models.CareStats       `json:"stats"`
	Streak   int                    `json:"streak"`
	Upcoming []models.Task          `json:"upcoming"`
	Insights []models.Insight       `json:"insights"`
	Activity []models.ActivityEntry `json:"activity"`
}

const upcomingLimit = 5

// GetDashboardHandler refreshes due tasks, then computes the aggregate
// view over the full snapshot.
func (hb *HandlerBundle) GetDashboardHandler(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)

	tasks, err := hb.Tasks.Refresh(ctx, userID)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to load dashboard", err.Error())
		return
	}
	plants, err := hb.PlantRepo.GetAll(ctx, userID)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to load dashboard", err.Error())
		return
	}
	reminders, err := hb.ReminderRepo.GetAll(ctx, userID)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to load dashboard", err.Error())
		return
	}

	now := time.Now()
	summary := DashboardSummary{
		Stats:    care.ComputeStats(plants, tasks, now),
		Streak:   care.CalculateStreak(tasks, now),
		Upcoming: upcomingTasks(tasks, upcomingLimit),
		Insights: care.GenerateInsights(plants, reminders, tasks, now),
		Activity: care.RecentActivity(plants, tasks),
	}
	c.JSON(http.StatusOK, summary)
}

// upcomingTasks returns the next pending tasks in due order. Tasks whose
// due date cannot be parsed are left out.
func upcomingTasks(tasks []models.Task, limit int) []models.Task {
	type dated struct {
		task models.Task
		at   int64
	}
	var pending []dated
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		due, ok := utils.ParseDate(t.DueDate)
		if !ok {
			continue
		}
		pending = append(pending, dated{task: t, at: due.UnixMilli()})
	}
	sort.SliceStable(pending, func(i, j int) bool { return pending[i].at < pending[j].at })
	if len(pending) > limit {
		pending = pending[:limit]
	}

	out := make([]models.Task, 0, len(pending))
	for _, d := range pending {
		out = append(out, d.task)
	}
	return out
}
