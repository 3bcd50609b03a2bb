package directoryRepo

import (
	"context"
	"fmt"

	"gramzo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoCategoryRepo) Create(ctx context.Context, category models.Category) error {
	if _, err := r.coll.InsertOne(ctx, category); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

func (r *mongoCategoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&category)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *mongoCategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *mongoCategoryRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete category with id %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

func (r *mongoNoticeRepo) Create(ctx context.Context, notice models.Notice) error {
	if _, err := r.coll.InsertOne(ctx, notice); err != nil {
		return fmt.Errorf("failed to insert notice: %w", err)
	}
	return nil
}

func (r *mongoNoticeRepo) GetAll(ctx context.Context) ([]models.Notice, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notices []models.Notice
	if err := cursor.All(ctx, &notices); err != nil {
		return nil, err
	}
	return notices, nil
}

func (r *mongoNoticeRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete notice with id %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}
