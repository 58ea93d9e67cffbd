package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Notifications *services.NotificationService
}

func NewNotificationController(n *services.NotificationService) *NotificationController {
	return &NotificationController{Notifications: n}
}

// GET /notifications?unread=true
func (nc *NotificationController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	unreadOnly := c.Query("unread") == "true"
	items, err := nc.Notifications.List(uid, unreadOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (nc *NotificationController) MarkRead(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := nc.Notifications.MarkRead(uid, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	uid := c.GetUint("userID")
	if err := nc.Notifications.MarkAllRead(uid); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (nc *NotificationController) UnreadCount(c *gin.Context) {
	uid := c.GetUint("userID")
	count, err := nc.Notifications.UnreadCount(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}
