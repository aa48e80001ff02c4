package handlers

import (
	"context"

	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/domain/services"
)

// NotificationHandler handles a user's decision notifications.
type NotificationHandler struct {
	site *services.SiteService
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(site *services.SiteService) *NotificationHandler {
	return &NotificationHandler{site: site}
}

// NotificationList is a user's notifications with the unread count.
type NotificationList struct {
	Unread        int                     `json:"unread"`
	Notifications []entities.Notification `json:"notifications"`
}

// List returns actor's notifications, most recent first.
func (h *NotificationHandler) List(actor *entities.User) (*NotificationList, error) {
	if actor == nil {
		return nil, services.ErrUnauthenticated
	}
	list := &NotificationList{Notifications: h.site.Notifications(actor.ID)}
	for _, n := range list.Notifications {
		if !n.IsRead {
			list.Unread++
		}
	}
	return list, nil
}

// MarkRead flags one of actor's notifications as read.
func (h *NotificationHandler) MarkRead(ctx context.Context, actor *entities.User, id string) error {
	return h.site.MarkNotificationRead(ctx, actor, id)
}
