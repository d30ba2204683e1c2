package notification

import (
	"context"
	"fmt"

	"growlytics/models"
	"growlytics/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotifyTasksDue pushes a summary of freshly created tasks. The push is
// skipped when FCM is not configured, the user has no device token, or
// push notifications are switched off in their settings.
func (s *DefaultNotificationService) NotifyTasksDue(ctx context.Context, userID string, created []models.Task) {
	if len(created) == 0 || utils.FCMClient == nil {
		return
	}

	settings, err := s.Settings.Get(ctx, userID)
	if err != nil {
		utils.GetLogger().Warn("push: settings lookup failed", zap.String("userId", userID), zap.Error(err))
		return
	}
	if settings == nil {
		defaults := models.DefaultSettings(userID)
		settings = &defaults
	}
	if !settings.Notifications.Push {
		return
	}

	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		utils.GetLogger().Warn("push: user lookup failed", zap.String("userId", userID), zap.Error(err))
		return
	}
	if u.FCMToken == "" {
		return
	}

	body := fmt.Sprintf("%s is due today", created[0].Type)
	if len(created) > 1 {
		body = fmt.Sprintf("%d care tasks are due today", len(created))
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: "Plant care due",
			Body:  body,
		},
		Data: map[string]string{"type": "tasks_due"},
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		utils.GetLogger().Warn("push: send failed", zap.String("userId", userID), zap.Error(err))
	}
}
