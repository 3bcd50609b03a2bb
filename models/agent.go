package models

import "time"

// Agent represents a supply-side account offering services and products.
// Earnings only grow, and only through the booking completion transition.
type Agent struct {
	ID         string    `bson:"id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Phone      string    `bson:"phone" json:"phone"`
	Location   string    `bson:"location" json:"location"`
	CategoryID string    `bson:"category_id" json:"categoryId"`
	IsApproved bool      `bson:"is_approved" json:"isApproved"`
	IsBlocked  bool      `bson:"is_blocked" json:"isBlocked"`
	Earnings   float64   `bson:"earnings" json:"earnings"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}
