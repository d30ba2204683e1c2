package handlers

import (
	"context"
	"net/http"
	"time"

	"growlytics/middleware"
	"growlytics/models"
	"growlytics/services/stream"
	"growlytics/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const streamHeartbeat = 30 * time.Second

// StreamCollectionHandler serves a live SSE feed for one collection. The
// client gets the current snapshot immediately and a fresh one after
// every change; each event carries the full collection, so consumers
// never have to patch state.
func (hb *HandlerBundle) StreamCollectionHandler(c *gin.Context) {
	collection := c.Param("collection")
	if !stream.ValidCollection(collection) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown collection"})
		return
	}
	userID := middleware.UserID(c)
	ctx := c.Request.Context()

	sub, err := hb.Hub.Subscribe(ctx, userID, collection)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Subscription failed", err.Error())
		return
	}
	defer sub.Close()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	send := func() {
		snapshot, err := hb.collectionSnapshot(ctx, userID, collection)
		if err != nil {
			// Keep the stream open; the next change retries the fetch.
			utils.GetLogger().Warn("stream: snapshot fetch failed",
				zap.String("collection", collection), zap.Error(err))
			return
		}
		c.SSEvent("snapshot", snapshot)
		c.Writer.Flush()
	}

	send()

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-sub.Events:
			if !ok {
				return
			}
			send()
		case <-heartbeat.C:
			c.SSEvent("ping", time.Now().Unix())
			c.Writer.Flush()
		}
	}
}

// collectionSnapshot fetches the current full contents of a collection.
// Absent data comes back as an empty list, or the defaults for settings.
func (hb *HandlerBundle) collectionSnapshot(ctx context.Context, userID, collection string) (interface{}, error) {
	switch collection {
	case stream.CollectionPlants:
		return hb.PlantRepo.GetAll(ctx, userID)
	case stream.CollectionReminders:
		return hb.ReminderRepo.GetAll(ctx, userID)
	case stream.CollectionTasks:
		return hb.TaskRepo.GetAll(ctx, userID)
	case stream.CollectionSettings:
		settings, err := hb.SettingsRepo.Get(ctx, userID)
		if err != nil {
			return nil, err
		}
		if settings == nil {
			defaults := models.DefaultSettings(userID)
			return defaults, nil
		}
		return settings, nil
	}
	return nil, nil
}
