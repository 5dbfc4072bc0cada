package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/promostore/catalog-api/internal/core/domain"
	"github.com/promostore/catalog-api/internal/core/ports"
)

// IdempotencyStore abstracts the replay store for product creation (Redis).
// Lookup returns the previously created product id, or "" when the key is unseen.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (string, error)
	Remember(ctx context.Context, key, productID string) error
}

// CatalogService implements product + campaign use cases. A product and its
// campaign are created as one aggregate: if the campaign write fails, the
// product write is compensated with a hard delete so neither is observable.
type CatalogService struct {
	products    ports.ProductRepository
	campaigns   ports.CampaignRepository
	idempotency IdempotencyStore // optional, nil disables replay
	logger      zerolog.Logger
}

func NewCatalogService(products ports.ProductRepository, campaigns ports.CampaignRepository, idempotency IdempotencyStore, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		products:    products,
		campaigns:   campaigns,
		idempotency: idempotency,
		logger:      logger,
	}
}

func (s *CatalogService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*ports.CreateProductResult, error) {
	if err := validateProductFields(input.Name, input.Price, input.Category); err != nil {
		return nil, err
	}
	if input.Campaign.Name == "" || input.Campaign.Percentage == "" || input.Campaign.Amount <= 0 {
		return nil, fmt.Errorf("%w: campaign name, amount and percentage are required", domain.ErrInvalidInput)
	}

	if s.idempotency != nil && input.IdempotencyKey != "" {
		productID, err := s.idempotency.Lookup(ctx, input.IdempotencyKey)
		if err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("idempotency lookup failed, creating anyway")
		} else if productID != "" {
			s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Str("product_id", productID).Msg("idempotent replay")
			return &ports.CreateProductResult{ProductID: productID, AlreadyExisted: true}, nil
		}
	}

	now := time.Now().UTC()
	productID := uuid.NewString()
	campaignID := uuid.NewString()

	product := &domain.Product{
		ID:          productID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    domain.Category(input.Category),
		URL:         input.URL,
		Stock:       input.Stock,
		Size:        input.Size,
		Composition: input.Composition,
		Color:       input.Color,
		Weight:      input.Weight,
		Images:      input.Images,
		CampaignID:  campaignID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	campaign := &domain.Campaign{
		ID:          campaignID,
		ProductID:   productID,
		Name:        input.Campaign.Name,
		Description: input.Campaign.Description,
		Amount:      input.Campaign.Amount,
		Percentage:  input.Campaign.Percentage,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.products.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	if err := s.campaigns.Create(ctx, campaign); err != nil {
		// Compensate the product write so the aggregate stays all-or-nothing.
		if delErr := s.products.HardDelete(ctx, productID); delErr != nil {
			s.logger.Error().Err(delErr).Str("product_id", productID).Msg("compensating product delete failed, dangling product left behind")
		}
		s.logger.Error().Err(err).Str("product_id", productID).Msg("failed to create campaign")
		return nil, err
	}

	if s.idempotency != nil && input.IdempotencyKey != "" {
		if err := s.idempotency.Remember(ctx, input.IdempotencyKey, productID); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("failed to record idempotency key")
		}
	}

	s.logger.Info().Str("product_id", productID).Str("campaign_id", campaignID).Msg("product created")

	return &ports.CreateProductResult{ProductID: productID}, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]ports.ProductDetail, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]ports.ProductDetail, 0, len(products))
	for _, p := range products {
		campaign, err := s.lookupCampaign(ctx, p)
		if err != nil {
			return nil, err
		}
		details = append(details, ports.ProductDetail{Product: p, Campaign: campaign})
	}
	return details, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*ports.ProductDetail, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	campaign, err := s.lookupCampaign(ctx, product)
	if err != nil {
		return nil, err
	}
	return &ports.ProductDetail{Product: product, Campaign: campaign}, nil
}

// UpdateProduct overwrites the mutable product fields. Soft-deleted products
// are not updatable and report not found. When input.Campaign is non-nil the
// linked campaign is overwritten as well; a missing campaign row is skipped.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	if err := validateProductFields(input.Name, input.Price, input.Category); err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Category = domain.Category(input.Category)
	product.URL = input.URL
	product.Stock = input.Stock
	product.Size = input.Size
	product.Composition = input.Composition
	product.Color = input.Color
	product.Weight = input.Weight
	product.Images = input.Images
	product.UpdatedAt = now

	if err := s.products.Update(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, err
	}

	if input.Campaign != nil {
		if err := s.updateCampaign(ctx, product.CampaignID, *input.Campaign, now); err != nil {
			return nil, err
		}
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")
	return product, nil
}

// DeleteProduct flips the deleted flag. Idempotent: deleting an already
// deleted or unknown id succeeds with no effect.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.SoftDelete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product soft deleted")
	return nil
}

func (s *CatalogService) lookupCampaign(ctx context.Context, p *domain.Product) (*domain.Campaign, error) {
	campaign, err := s.campaigns.FindByID(ctx, p.CampaignID)
	if err != nil {
		if errors.Is(err, domain.ErrCampaignNotFound) {
			// Inconsistent data (dangling campaign_id): the product is still
			// served, with no campaign attached.
			s.logger.Warn().Str("product_id", p.ID).Str("campaign_id", p.CampaignID).Msg("campaign missing for product")
			return nil, nil
		}
		return nil, err
	}
	return campaign, nil
}

func (s *CatalogService) updateCampaign(ctx context.Context, campaignID string, input ports.CampaignInput, now time.Time) error {
	campaign, err := s.campaigns.FindByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, domain.ErrCampaignNotFound) {
			s.logger.Warn().Str("campaign_id", campaignID).Msg("campaign missing, update skipped")
			return nil
		}
		return err
	}

	campaign.Name = input.Name
	campaign.Description = input.Description
	campaign.Amount = input.Amount
	campaign.Percentage = input.Percentage
	campaign.UpdatedAt = now

	if err := s.campaigns.Update(ctx, campaign); err != nil {
		s.logger.Error().Err(err).Str("campaign_id", campaignID).Msg("failed to update campaign")
		return err
	}
	return nil
}

func validateProductFields(name string, price float64, category string) error {
	if name == "" || price <= 0 || category == "" {
		return fmt.Errorf("%w: name, price and category are required", domain.ErrInvalidInput)
	}
	if !domain.Category(category).Valid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
	}
	return nil
}
