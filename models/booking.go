package models

import "time"

// Booking status values. pending is the initial state; rejected and completed
// are terminal on the guarded respond path. The privileged status-update path
// can also move pending directly to completed.
const (
	BookingPending   = "pending"
	BookingAccepted  = "accepted"
	BookingRejected  = "rejected"
	BookingCompleted = "completed"
)

// Payment status values. Payment is independent of the booking status.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// Booking is a user's request to consume a service, carrying a frozen price
// snapshot and the platform fee split computed at creation time. AgentID is
// copied from the service at creation and never re-derived afterwards.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	UserName      string    `bson:"user_name" json:"userName"`
	Phone         string    `bson:"phone" json:"phone"`
	ServiceID     string    `bson:"service_id" json:"serviceId"`
	AgentID       string    `bson:"agent_id" json:"agentId"`
	Date          string    `bson:"date" json:"date"`
	Time          string    `bson:"time,omitempty" json:"time,omitempty"`
	Amount        float64   `bson:"amount" json:"amount"`
	PlatformFee   float64   `bson:"platform_fee" json:"platformFee"`
	AgentEarning  float64   `bson:"agent_earning" json:"agentEarning"`
	PaymentStatus string    `bson:"payment_status" json:"paymentStatus"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// BookingDetail is a booking populated with its referenced service and agent,
// returned by the list endpoint.
type BookingDetail struct {
	Booking
	Service *Service `json:"service,omitempty"`
	Agent   *Agent   `json:"agent,omitempty"`
}
