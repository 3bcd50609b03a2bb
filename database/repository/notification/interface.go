package notificationRepo

import (
	"context"

	"gramzo/database"
	"gramzo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification models.Notification) error
	GetByID(ctx context.Context, id string) (*models.Notification, error)
	ListByFilter(ctx context.Context, filter bson.M) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo returns a NotificationRepository backed by MongoDB.
func NewMongoNotificationRepo() NotificationRepository {
	return &mongoNotificationRepo{coll: database.Collection("notifications")}
}
