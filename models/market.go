package models

import "time"

// MarketHistoryLimit caps the number of superseded prices kept per item.
const MarketHistoryLimit = 50

// PriceEntry is a superseded price snapshot in a market item's history.
type PriceEntry struct {
	Price     float64   `bson:"price" json:"price"`
	UpdatedBy string    `bson:"updated_by" json:"updatedBy"`
	Date      time.Time `bson:"date" json:"date"`
}

// MarketPrice is a community-maintained price board entry. At most one live
// document exists per (itemName, category) pair on the add-or-update path.
// PriceHistory holds the most recent superseded price first.
type MarketPrice struct {
	ID           string       `bson:"id" json:"id"`
	ItemName     string       `bson:"item_name" json:"itemName"`
	Category     string       `bson:"category" json:"category"`
	Price        float64      `bson:"price" json:"price"`
	Image        string       `bson:"image" json:"image"`
	Location     string       `bson:"location" json:"location"`
	UpdatedBy    string       `bson:"updated_by" json:"updatedBy"`
	Role         Role         `bson:"role" json:"role"`
	PriceHistory []PriceEntry `bson:"price_history" json:"priceHistory"`
	CreatedAt    time.Time    `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updated_at" json:"updatedAt"`
}
