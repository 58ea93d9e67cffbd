package services

import (
	"fmt"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type notifierDeps struct {
	db   *gorm.DB
	rt   *RealtimeHub
	push *PushService
}

var _notifier notifierDeps

func InitNotifierDeps(db *gorm.DB, rt *RealtimeHub, push *PushService) {
	_notifier = notifierDeps{db: db, rt: rt, push: push}
}

// EmitNotification stores a notification row and fans it out to connected
// websocket clients and registered devices. Safe to call anywhere; every
// failure is swallowed — notifications are best effort, never part of the
// caller's success contract.
func EmitNotification(userID uint, typ, title, message string) {
	if _notifier.db == nil {
		return // not initialized
	}
	n := &models.Notification{
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}
	_ = _notifier.db.Create(n).Error

	if _notifier.rt != nil {
		_notifier.rt.Broadcast(userID, map[string]any{
			"kind":         "notification.created",
			"notification": n,
		})
	}
	if _notifier.push != nil {
		_notifier.push.PushToUser(userID, title, message, map[string]string{
			"type": typ, "notificationId": fmt.Sprintf("%d", n.ID),
		})
	}
}
