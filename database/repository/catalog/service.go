package catalogRepo

import (
	"context"
	"fmt"

	"gramzo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoServiceRepo) Create(ctx context.Context, service models.Service) error {
	if _, err := r.coll.InsertOne(ctx, service); err != nil {
		return fmt.Errorf("failed to insert service: %w", err)
	}
	return nil
}

func (r *mongoServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	var service models.Service
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&service)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *mongoServiceRepo) List(ctx context.Context, filter ListingFilter) ([]models.Service, error) {
	query := bson.M{}
	if filter.CategoryID != "" {
		query["category_id"] = filter.CategoryID
	}
	if filter.AgentID != "" {
		query["agent_id"] = filter.AgentID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *mongoServiceRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete service with id %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}
