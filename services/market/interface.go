package market

import (
	"context"

	"gramzo/models"
)

// AddOrUpdateInput is the payload for the add-or-update-by-name path. Price is
// a pointer so that a missing price is distinguishable from zero.
type AddOrUpdateInput struct {
	ItemName  string   `json:"itemName" binding:"required"`
	Category  string   `json:"category" binding:"required"`
	Price     *float64 `json:"price" binding:"required"`
	Image     string   `json:"image"`
	Location  string   `json:"location"`
	UpdatedBy string   `json:"updatedBy"`
	Role      string   `json:"role"`
}

// UpdateByIDInput is the payload for the update-by-id path.
type UpdateByIDInput struct {
	ItemID    string   `json:"itemId" binding:"required"`
	NewPrice  *float64 `json:"newPrice" binding:"required"`
	UpdatedBy string   `json:"updatedBy"`
	Role      string   `json:"role"`
}

// MarketService is the community price ledger.
type MarketService interface {
	AddOrUpdate(ctx context.Context, in AddOrUpdateInput) (*models.MarketPrice, bool, error)
	UpdateByID(ctx context.Context, in UpdateByIDInput) (*models.MarketPrice, error)
	List(ctx context.Context) ([]models.MarketPrice, error)
	ByCategory(ctx context.Context, category string) ([]models.MarketPrice, error)
}
