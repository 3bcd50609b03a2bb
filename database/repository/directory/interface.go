package directoryRepo

import (
	"context"

	"gramzo/database"
	"gramzo/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CategoryRepository interface {
	Create(ctx context.Context, category models.Category) error
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type NoticeRepository interface {
	Create(ctx context.Context, notice models.Notice) error
	GetAll(ctx context.Context) ([]models.Notice, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type mongoCategoryRepo struct {
	coll *mongo.Collection
}

type mongoNoticeRepo struct {
	coll *mongo.Collection
}

// NewMongoCategoryRepo returns a CategoryRepository backed by MongoDB.
func NewMongoCategoryRepo() CategoryRepository {
	return &mongoCategoryRepo{coll: database.Collection("categories")}
}

// NewMongoNoticeRepo returns a NoticeRepository backed by MongoDB.
func NewMongoNoticeRepo() NoticeRepository {
	return &mongoNoticeRepo{coll: database.Collection("notices")}
}
