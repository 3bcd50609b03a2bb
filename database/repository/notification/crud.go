package notificationRepo

import (
	"context"
	"fmt"

	"gramzo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoNotificationRepo) Create(ctx context.Context, notification models.Notification) error {
	if _, err := r.coll.InsertOne(ctx, notification); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

func (r *mongoNotificationRepo) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	var notification models.Notification
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&notification)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *mongoNotificationRepo) ListByFilter(ctx context.Context, filter bson.M) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *mongoNotificationRepo) MarkRead(ctx context.Context, id string) (bool, error) {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return false, fmt.Errorf("failed to mark notification with id %s read: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}

func (r *mongoNotificationRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete notification with id %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}
