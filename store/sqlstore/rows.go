package sqlstore

import (
	"bistro-boss-api/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rows keep ObjectIDs as 24-char hex so ids look the same on both backends.

type userRow struct {
	ID      string         `gorm:"primaryKey;size:24"`
	Email   string         `gorm:"uniqueIndex;not null"`
	Name    string
	Role    string
	Profile map[string]any `gorm:"serializer:json"`
}

func (userRow) TableName() string { return "users" }

func (r userRow) model() models.User {
	return models.User{
		ID:      hexID(r.ID),
		Name:    r.Name,
		Email:   r.Email,
		Role:    models.UserRole(r.Role),
		Profile: r.Profile,
	}
}

type menuRow struct {
	ID       string `gorm:"primaryKey;size:24"`
	Name     string `gorm:"not null"`
	Recipe   string
	Image    string
	Category string
	Price    float64
}

func (menuRow) TableName() string { return "menu" }

func (r menuRow) model() models.MenuItem {
	return models.MenuItem{
		ID:       hexID(r.ID),
		Name:     r.Name,
		Recipe:   r.Recipe,
		Image:    r.Image,
		Category: r.Category,
		Price:    r.Price,
	}
}

func menuRowFrom(m models.MenuItem) menuRow {
	return menuRow{
		ID:       m.ID.Hex(),
		Name:     m.Name,
		Recipe:   m.Recipe,
		Image:    m.Image,
		Category: m.Category,
		Price:    m.Price,
	}
}

type reviewRow struct {
	ID      string `gorm:"primaryKey;size:24"`
	Name    string
	Details string
	Rating  float64
}

func (reviewRow) TableName() string { return "reviews" }

func (r reviewRow) model() models.Review {
	return models.Review{ID: hexID(r.ID), Name: r.Name, Details: r.Details, Rating: r.Rating}
}

type cartRow struct {
	ID         string `gorm:"primaryKey;size:24"`
	MenuItemID string
	Name       string
	Image      string
	Price      float64
	Email      string `gorm:"index"`
}

func (cartRow) TableName() string { return "carts" }

func (r cartRow) model() models.CartEntry {
	return models.CartEntry{
		ID:         hexID(r.ID),
		MenuItemID: r.MenuItemID,
		Name:       r.Name,
		Image:      r.Image,
		Price:      r.Price,
		Email:      r.Email,
	}
}

type paymentRow struct {
	ID            string `gorm:"primaryKey;size:24"`
	Email         string `gorm:"index"`
	TransactionID string
	Price         float64
	Currency      string
	Quantity      int
	Date          string
	Status        string
	CartItems     []string `gorm:"serializer:json"`
	MenuItems     []string `gorm:"serializer:json"`
	ItemNames     []string `gorm:"serializer:json"`
}

func (paymentRow) TableName() string { return "payments" }

func paymentRowFrom(p models.Payment) paymentRow {
	return paymentRow{
		ID:            p.ID.Hex(),
		Email:         p.Email,
		TransactionID: p.TransactionID,
		Price:         p.Price,
		Currency:      p.Currency,
		Quantity:      p.Quantity,
		Date:          p.Date,
		Status:        p.Status,
		CartItems:     p.CartItems,
		MenuItems:     p.MenuItems,
		ItemNames:     p.ItemNames,
	}
}

func hexID(s string) primitive.ObjectID {
	oid, _ := primitive.ObjectIDFromHex(s)
	return oid
}
