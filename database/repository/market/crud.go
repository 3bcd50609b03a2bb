package marketRepo

import (
	"context"
	"fmt"
	"regexp"

	"gramzo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoMarketRepo) Create(ctx context.Context, item models.MarketPrice) error {
	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to insert market item: %w", err)
	}
	return nil
}

func (r *mongoMarketRepo) GetByID(ctx context.Context, id string) (*models.MarketPrice, error) {
	var item models.MarketPrice
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByItem looks up the live document for an exact (itemName, category) pair.
func (r *mongoMarketRepo) GetByItem(ctx context.Context, itemName, category string) (*models.MarketPrice, error) {
	var item models.MarketPrice
	err := r.coll.FindOne(ctx, bson.M{"item_name": itemName, "category": category}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *mongoMarketRepo) UpdateSet(ctx context.Context, id string, update bson.M) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("failed to update market item with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("market item with id %s not found", id)
	}
	return nil
}

func (r *mongoMarketRepo) GetAll(ctx context.Context) ([]models.MarketPrice, error) {
	return r.find(ctx, bson.M{})
}

// SearchCategory performs a case-insensitive substring match over the
// free-text category field.
func (r *mongoMarketRepo) SearchCategory(ctx context.Context, category string) ([]models.MarketPrice, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(category), Options: "i"}
	return r.find(ctx, bson.M{"category": pattern})
}

func (r *mongoMarketRepo) find(ctx context.Context, filter bson.M) ([]models.MarketPrice, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.MarketPrice
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
