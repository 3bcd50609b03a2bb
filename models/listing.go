package models

import "time"

// DefaultListingImage is used when a listing is created without an image URL.
const DefaultListingImage = "https://via.placeholder.com/300x200?text=Gramzo"

// Service is a bookable offering owned by an agent.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	CategoryID  string    `bson:"category_id" json:"categoryId"`
	AgentID     string    `bson:"agent_id" json:"agentId"`
	Location    string    `bson:"location" json:"location"`
	Image       string    `bson:"image" json:"image"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// Product is a sellable item owned by an agent. It shares the listing shape
// with Service but is not bookable.
type Product struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	CategoryID  string    `bson:"category_id" json:"categoryId"`
	AgentID     string    `bson:"agent_id" json:"agentId"`
	Location    string    `bson:"location" json:"location"`
	Image       string    `bson:"image" json:"image"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
