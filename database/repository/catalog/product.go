package catalogRepo

import (
	"context"
	"fmt"

	"gramzo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoProductRepo) Create(ctx context.Context, product models.Product) error {
	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (r *mongoProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *mongoProductRepo) List(ctx context.Context, filter ListingFilter) ([]models.Product, error) {
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

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *mongoProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete product with id %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}
