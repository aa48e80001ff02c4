package entities

import "time"

// NotificationType tags what a notification is about.
type NotificationType string

const (
	NotificationRequestApproved NotificationType = "REQUEST_APPROVED"
	NotificationRequestRejected NotificationType = "REQUEST_REJECTED"
	NotificationRequestHold     NotificationType = "REQUEST_HOLD"
	NotificationAnnouncement    NotificationType = "ANNOUNCEMENT"
)

// Notification is a message addressed to a single user.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Link      string           `json:"link,omitempty"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
