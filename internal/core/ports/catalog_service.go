package ports

import (
	"context"

	"github.com/promostore/catalog-api/internal/core/domain"
)

// CampaignInput carries the campaign fields supplied with a product create
// or update request.
type CampaignInput struct {
	Name        string
	Description string
	Amount      float64
	Percentage  string
}

// CreateProductInput carries all data needed to create a product with its
// paired campaign.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	URL         string
	Stock       string
	Size        string
	Composition string
	Color       string
	Weight      string
	Images      string
	Campaign    CampaignInput
	// IdempotencyKey, when non-empty, makes repeated creates with the same
	// key replay the originally created product instead of inserting again.
	IdempotencyKey string
}

// UpdateProductInput carries the mutable product fields. Campaign is
// optional: when nil the linked campaign is left untouched.
type UpdateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	URL         string
	Stock       string
	Size        string
	Composition string
	Color       string
	Weight      string
	Images      string
	Campaign    *CampaignInput
}

// CreateProductResult is returned by the service after creating a product.
type CreateProductResult struct {
	ProductID string
	// AlreadyExisted is true when the idempotency key matched a previous create.
	AlreadyExisted bool
}

// ProductDetail is a product joined with its campaign. Campaign may be nil
// when the linked campaign row is missing.
type ProductDetail struct {
	Product  *domain.Product
	Campaign *domain.Campaign
}

// CatalogService defines use-case operations for the product catalog.
type CatalogService interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*CreateProductResult, error)
	ListProducts(ctx context.Context) ([]ProductDetail, error)
	GetProduct(ctx context.Context, id string) (*ProductDetail, error)
	UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
