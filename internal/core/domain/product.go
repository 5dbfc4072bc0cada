package domain

import (
	"errors"
	"time"
)

// Category classifies a product.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryFood        Category = "Food"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryElectronics, CategoryClothing, CategoryFood:
		return true
	}
	return false
}

var ErrInvalidInput = errors.New("invalid input")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrProductNotFound = errors.New("product not found")
var ErrCampaignNotFound = errors.New("campaign not found")

// Campaign is the promotion record paired 1:1 with a product.
// It is created together with its product and has no deletion path.
type Campaign struct {
	ID          string    `json:"id" bson:"id"`
	ProductID   string    `json:"product_id" bson:"product_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Amount      float64   `json:"amount" bson:"amount"`
	Percentage  string    `json:"percentage" bson:"percentage"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// Product is the catalog aggregate root. CampaignID links to the campaign
// created in the same operation; Deleted marks a soft delete.
type Product struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	Category    Category  `json:"category" bson:"category"`
	URL         string    `json:"url,omitempty" bson:"url,omitempty"`
	Stock       string    `json:"stock" bson:"stock"`
	Size        string    `json:"size" bson:"size"`
	Composition string    `json:"composition" bson:"composition"`
	Color       string    `json:"color" bson:"color"`
	Weight      string    `json:"weight" bson:"weight"`
	Images      string    `json:"images" bson:"images"`
	CampaignID  string    `json:"campaign_id" bson:"campaign_id"`
	Deleted     bool      `json:"deleted" bson:"deleted"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
