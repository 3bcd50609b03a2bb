package models

import "time"

// Notification types.
const (
	NotifAdminNotice    = "admin_notice"
	NotifOrderUpdate    = "order_update"
	NotifBookingRequest = "booking_request"
	NotifBookingUpdate  = "booking_update"
)

// Notification is a persisted, role-filtered event record polled by clients.
// There is no push channel; delivery is a read-side visibility filter.
type Notification struct {
	ID             string    `bson:"id" json:"id"`
	Title          string    `bson:"title" json:"title"`
	Message        string    `bson:"message" json:"message"`
	Type           string    `bson:"type" json:"type"`
	RecipientRole  Role      `bson:"recipient_role" json:"recipientRole"`
	RecipientID    string    `bson:"recipient_id,omitempty" json:"recipientId,omitempty"`
	RecipientPhone string    `bson:"recipient_phone,omitempty" json:"recipientPhone,omitempty"`
	BookingID      string    `bson:"booking_id,omitempty" json:"bookingId,omitempty"`
	SenderID       string    `bson:"sender_id,omitempty" json:"senderId,omitempty"`
	IsRead         bool      `bson:"is_read" json:"isRead"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}
