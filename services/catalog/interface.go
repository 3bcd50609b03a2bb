package catalog

import (
	"context"

	catalogRepo "gramzo/database/repository/catalog"
	"gramzo/models"
)

// CreateListingInput is the payload for creating a service or product.
type CreateListingInput struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	CategoryID  string  `json:"categoryId"`
	AgentID     string  `json:"agentId" binding:"required"`
	Location    string  `json:"location"`
	Image       string  `json:"image"`
}

// CatalogService manages agent-owned listings.
type CatalogService interface {
	CreateService(ctx context.Context, in CreateListingInput) (*models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	ListServices(ctx context.Context, filter catalogRepo.ListingFilter) ([]models.Service, error)
	DeleteService(ctx context.Context, id string, actor models.AuthContext) error

	CreateProduct(ctx context.Context, in CreateListingInput) (*models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	ListProducts(ctx context.Context, filter catalogRepo.ListingFilter) ([]models.Product, error)
	DeleteProduct(ctx context.Context, id string, actor models.AuthContext) error
}
