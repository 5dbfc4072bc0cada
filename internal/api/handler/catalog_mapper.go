package handler

import (
	"github.com/promostore/catalog-api/internal/core/domain"
	"github.com/promostore/catalog-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createProductRequest, idempotencyKey string) ports.CreateProductInput {
	return ports.CreateProductInput{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Category:       req.Category,
		URL:            req.URL,
		Stock:          req.Stock,
		Size:           req.Size,
		Composition:    req.Composition,
		Color:          req.Color,
		Weight:         req.Weight,
		Images:         req.Images,
		Campaign:       toCampaignInput(req.Campaign),
		IdempotencyKey: idempotencyKey,
	}
}

func toUpdateInput(req updateProductRequest) ports.UpdateProductInput {
	input := ports.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		URL:         req.URL,
		Stock:       req.Stock,
		Size:        req.Size,
		Composition: req.Composition,
		Color:       req.Color,
		Weight:      req.Weight,
		Images:      req.Images,
	}
	if req.Campaign != nil {
		campaign := toCampaignInput(*req.Campaign)
		input.Campaign = &campaign
	}
	return input
}

func toCampaignInput(c campaignRequest) ports.CampaignInput {
	return ports.CampaignInput{
		Name:        c.Name,
		Description: c.Description,
		Amount:      c.Amount,
		Percentage:  c.Percentage,
	}
}

// --- Service result → HTTP response ---

func toProductResponse(d ports.ProductDetail) productResponse {
	resp := productResponse{
		ID:          d.Product.ID,
		Name:        d.Product.Name,
		Description: d.Product.Description,
		Price:       d.Product.Price,
		Category:    string(d.Product.Category),
		URL:         d.Product.URL,
		Stock:       d.Product.Stock,
		Size:        d.Product.Size,
		Composition: d.Product.Composition,
		Color:       d.Product.Color,
		Weight:      d.Product.Weight,
		Images:      d.Product.Images,
		CampaignID:  d.Product.CampaignID,
		CreatedAt:   d.Product.CreatedAt.UTC(),
		UpdatedAt:   d.Product.UpdatedAt.UTC(),
	}
	if d.Campaign != nil {
		resp.Campaign = toCampaignResponse(d.Campaign)
	}
	return resp
}

func toCampaignResponse(c *domain.Campaign) *campaignResponse {
	return &campaignResponse{
		ID:          c.ID,
		ProductID:   c.ProductID,
		Name:        c.Name,
		Description: c.Description,
		Amount:      c.Amount,
		Percentage:  c.Percentage,
		CreatedAt:   c.CreatedAt.UTC(),
		UpdatedAt:   c.UpdatedAt.UTC(),
	}
}

func toListResponse(details []ports.ProductDetail) listProductsResponse {
	items := make([]productResponse, len(details))
	for i, d := range details {
		items[i] = toProductResponse(d)
	}
	return listProductsResponse{Status: "SUCCESS", Products: items}
}
