package models

import "time"

// Category tags agents, listings and market items.
type Category struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Type      string    `bson:"type" json:"type"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Notice is an admin-authored announcement shown on the public board.
type Notice struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Location    string    `bson:"location" json:"location"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
