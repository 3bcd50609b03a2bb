package bookingRepo

import (
	"context"

	"gramzo/database"
	"gramzo/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, phone, agentID string) ([]models.Booking, error)
	SetStatus(ctx context.Context, id, status string) error
	SetPaymentStatus(ctx context.Context, id, status string) error
	CompleteOnce(ctx context.Context, id string) (*models.Booking, bool, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{coll: database.Collection("bookings")}
}
