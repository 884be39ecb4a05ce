package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartEntry is one menu item waiting for checkout. Price is a snapshot taken
// when the item was added.
type CartEntry struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	MenuItemID string             `json:"menuItemId" bson:"menuItemId"`
	Name       string             `json:"name" bson:"name"`
	Image      string             `json:"image" bson:"image"`
	Price      float64            `json:"price" bson:"price"`
	Email      string             `json:"email" bson:"email" binding:"required"`
}
