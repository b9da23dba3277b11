package dto

import (
	"time"

	"jobboard/internal/domain/notification"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID         `json:"id"`
	Message   string            `json:"message"`
	Link      string            `json:"link,omitempty"`
	Type      notification.Type `json:"type"`
	Read      bool              `json:"read"`
	CreatedAt time.Time         `json:"created_at"`
}

type NotificationListResponse struct {
	Items  []NotificationResponse `json:"items"`
	Unread int                    `json:"unread"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

func FromNotifications(in []notification.Notification, unread int) NotificationListResponse {
	items := make([]NotificationResponse, 0, len(in))
	for _, n := range in {
		items = append(items, NotificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			Link:      n.Link,
			Type:      n.Type,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return NotificationListResponse{Items: items, Unread: unread}
}
