package marketRepo

import (
	"context"

	"gramzo/database"
	"gramzo/models"
	"gramzo/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MarketRepository interface {
	Create(ctx context.Context, item models.MarketPrice) error
	GetByID(ctx context.Context, id string) (*models.MarketPrice, error)
	GetByItem(ctx context.Context, itemName, category string) (*models.MarketPrice, error)
	UpdateSet(ctx context.Context, id string, update bson.M) error
	GetAll(ctx context.Context) ([]models.MarketPrice, error)
	SearchCategory(ctx context.Context, category string) ([]models.MarketPrice, error)
}

type mongoMarketRepo struct {
	coll *mongo.Collection
}

// NewMongoMarketRepo returns a MarketRepository backed by MongoDB.
func NewMongoMarketRepo() MarketRepository {
	repo := &mongoMarketRepo{coll: database.Collection("market_prices")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("market repo: %v", err)
	}
	return repo
}
