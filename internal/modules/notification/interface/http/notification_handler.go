package handler

import (
	"time"

	notifRespond "MedLink/internal/modules/notification/application/dto/respond"
	"MedLink/internal/modules/notification/application/service"
	notifEntity "MedLink/internal/modules/notification/domain/entity"
	"MedLink/pkg/back"
	"MedLink/pkg/xerr"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	feed service.FeedService
}

func NewNotificationHandler(feed service.FeedService) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

func (h *NotificationHandler) GetFeed(c *gin.Context) {
	entries := h.feed.List()
	items := make([]notifRespond.NotificationItem, 0, len(entries))
	for _, n := range entries {
		items = append(items, toItem(n))
	}
	back.Result(c, notifRespond.FeedRespond{
		Notifications: items,
		UnreadCount:   h.feed.UnreadCount(),
	}, nil)
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	uuid := c.Param("uuid")
	if uuid == "" {
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	h.feed.MarkAsRead(uuid)
	back.Result(c, nil, nil)
}

func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	h.feed.MarkAllAsRead()
	back.Result(c, nil, nil)
}

func (h *NotificationHandler) Remove(c *gin.Context) {
	uuid := c.Param("uuid")
	if uuid == "" {
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	h.feed.Remove(uuid)
	back.Result(c, nil, nil)
}

func toItem(n *notifEntity.Notification) notifRespond.NotificationItem {
	return notifRespond.NotificationItem{
		Uuid:        n.Uuid,
		Type:        string(n.Type),
		Title:       n.Title,
		Description: n.Description,
		Timestamp:   n.Timestamp.Format(time.RFC3339),
		IsRead:      n.IsRead,
		Priority:    string(n.Priority),
		ActionUrl:   n.ActionUrl,
	}
}
