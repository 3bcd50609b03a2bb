package bookingRepo

import (
	"context"
	"fmt"

	"gramzo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) error {
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *mongoBookingRepo) List(ctx context.Context, phone, agentID string) ([]models.Booking, error) {
	filter := bson.M{}
	if phone != "" {
		filter["phone"] = phone
	}
	if agentID != "" {
		filter["agent_id"] = agentID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *mongoBookingRepo) SetStatus(ctx context.Context, id, status string) error {
	return r.setField(ctx, id, "status", status)
}

func (r *mongoBookingRepo) SetPaymentStatus(ctx context.Context, id, status string) error {
	return r.setField(ctx, id, "payment_status", status)
}

func (r *mongoBookingRepo) setField(ctx context.Context, id, field, value string) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", id)
	}
	return nil
}

// CompleteOnce conditionally moves a booking into the completed status. The
// filter only matches while status is not already completed, so concurrent
// completion requests resolve to exactly one winner; the caller credits agent
// earnings only when the transition happened.
func (r *mongoBookingRepo) CompleteOnce(ctx context.Context, id string) (*models.Booking, bool, error) {
	filter := bson.M{"id": id, "status": bson.M{"$ne": models.BookingCompleted}}
	update := bson.M{"$set": bson.M{"status": models.BookingCompleted}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to complete booking with id %s: %w", id, err)
	}
	return &booking, true, nil
}
