package catalogRepo

import (
	"context"

	"gramzo/database"
	"gramzo/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ListingFilter narrows catalog queries; zero values mean "any".
type ListingFilter struct {
	CategoryID string
	AgentID    string
}

type ServiceRepository interface {
	Create(ctx context.Context, service models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	List(ctx context.Context, filter ListingFilter) ([]models.Service, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	List(ctx context.Context, filter ListingFilter) ([]models.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

type mongoProductRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo returns a ServiceRepository backed by MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	return &mongoServiceRepo{coll: database.Collection("services")}
}

// NewMongoProductRepo returns a ProductRepository backed by MongoDB.
func NewMongoProductRepo() ProductRepository {
	return &mongoProductRepo{coll: database.Collection("products")}
}
