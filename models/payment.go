package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment is recorded once per checkout. CartItems holds the hex ids of the
// cart entries it paid for; recording it removes them.
type Payment struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"`
	TransactionID string             `json:"transactionId" bson:"transactionId"`
	Price         float64            `json:"price" bson:"price"`
	Currency      string             `json:"currency,omitempty" bson:"currency,omitempty"`
	Quantity      int                `json:"quantity" bson:"quantity"`
	Date          string             `json:"date,omitempty" bson:"date,omitempty"`
	Status        string             `json:"status,omitempty" bson:"status,omitempty"`
	CartItems     []string           `json:"cartItems" bson:"cartItems"`
	MenuItems     []string           `json:"menuItems,omitempty" bson:"menuItems,omitempty"`
	ItemNames     []string           `json:"itemNames,omitempty" bson:"itemNames,omitempty"`
}

// AdminStats is the dashboard summary. Counts are estimates.
type AdminStats struct {
	Users    int64   `json:"users"`
	Products int64   `json:"products"`
	Orders   int64   `json:"order"`
	Revenue  float64 `json:"revenue"`
}
