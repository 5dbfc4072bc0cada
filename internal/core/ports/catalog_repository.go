package ports

import (
	"context"

	"github.com/promostore/catalog-api/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
// Queries that read products exclude soft-deleted rows; Delete flips the
// deleted flag and reports whether a matching live row existed.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	SoftDelete(ctx context.Context, id string) error
	// HardDelete physically removes a product row. Used only to compensate
	// a failed campaign write during creation.
	HardDelete(ctx context.Context, id string) error
}

// CampaignRepository defines persistence operations for campaigns.
// Campaigns have no deletion path.
type CampaignRepository interface {
	Create(ctx context.Context, c *domain.Campaign) error
	FindByID(ctx context.Context, id string) (*domain.Campaign, error)
	Update(ctx context.Context, c *domain.Campaign) error
}
