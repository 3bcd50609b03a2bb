package notification

import (
	"context"

	"gramzo/models"
)

// Dispatcher hands a notification record off for delivery. The asynq
// implementation enqueues it for the background worker; the store
// implementation writes it synchronously. Booking flows never block on, or
// fail because of, a dispatcher error.
type Dispatcher interface {
	Dispatch(ctx context.Context, notification models.Notification) error
}

// CreateNotificationInput is the payload for client-created notifications.
type CreateNotificationInput struct {
	Title          string `json:"title" binding:"required"`
	Message        string `json:"message" binding:"required"`
	Type           string `json:"type" binding:"required"`
	RecipientRole  string `json:"recipientRole" binding:"required"`
	RecipientID    string `json:"recipientId"`
	RecipientPhone string `json:"recipientPhone"`
	BookingID      string `json:"bookingId"`
	SenderID       string `json:"senderId"`
}

// NotificationService is the pull-only notification feed.
type NotificationService interface {
	List(ctx context.Context, actor models.AuthContext) ([]models.Notification, error)
	Create(ctx context.Context, in CreateNotificationInput, actorRole models.Role) (*models.Notification, error)
	Delete(ctx context.Context, id string, actor models.AuthContext) error
	MarkRead(ctx context.Context, id string) error
}
