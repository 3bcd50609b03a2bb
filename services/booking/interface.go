package booking

import (
	"context"

	"gramzo/models"
)

// CreateBookingInput is the payload for creating a booking.
type CreateBookingInput struct {
	UserName  string `json:"userName" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	ServiceID string `json:"serviceId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time"`
}

// BookingService is the booking lifecycle engine.
type BookingService interface {
	Create(ctx context.Context, in CreateBookingInput) (*models.Booking, error)
	Respond(ctx context.Context, bookingID, status string, actor models.AuthContext) (*models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, status string, actor models.AuthContext) (*models.Booking, error)
	Pay(ctx context.Context, bookingID string) (*models.Booking, error)
	List(ctx context.Context, phone, agentID string) ([]models.BookingDetail, error)
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
}
