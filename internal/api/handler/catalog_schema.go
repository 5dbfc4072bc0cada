package handler

import "time"

// catalogErrorResponse is the error envelope returned by all product routes.
type catalogErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// --- Request types ---

type campaignRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"      validate:"required,gt=0"`
	Percentage  string  `json:"percentage"  validate:"required"`
}

type createProductRequest struct {
	Name        string          `json:"name"        validate:"required"`
	Description string          `json:"description"`
	Price       float64         `json:"price"       validate:"required,gt=0"`
	Category    string          `json:"category"    validate:"required,oneof=Electronics Clothing Food"`
	URL         string          `json:"url"`
	Stock       string          `json:"stock"       validate:"required"`
	Size        string          `json:"size"        validate:"required"`
	Composition string          `json:"composition" validate:"required"`
	Color       string          `json:"color"       validate:"required"`
	Weight      string          `json:"weight"      validate:"required"`
	Images      string          `json:"images"      validate:"required"`
	Campaign    campaignRequest `json:"campaign"    validate:"required"`
}

// updateProductRequest mirrors createProductRequest except that the campaign
// payload is optional: absent means "leave the linked campaign untouched".
type updateProductRequest struct {
	Name        string           `json:"name"        validate:"required"`
	Description string           `json:"description"`
	Price       float64          `json:"price"       validate:"required,gt=0"`
	Category    string           `json:"category"    validate:"required,oneof=Electronics Clothing Food"`
	URL         string           `json:"url"`
	Stock       string           `json:"stock"       validate:"required"`
	Size        string           `json:"size"        validate:"required"`
	Composition string           `json:"composition" validate:"required"`
	Color       string           `json:"color"       validate:"required"`
	Weight      string           `json:"weight"      validate:"required"`
	Images      string           `json:"images"      validate:"required"`
	Campaign    *campaignRequest `json:"campaign,omitempty" validate:"omitempty"`
}

// --- Response types ---
// Response-only types owned by the transport layer, kept separate from
// domain types so the JSON contract is not coupled to internal changes.

type campaignResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
	Percentage  string    `json:"percentage"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type productResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Price       float64           `json:"price"`
	Category    string            `json:"category"`
	URL         string            `json:"url,omitempty"`
	Stock       string            `json:"stock"`
	Size        string            `json:"size"`
	Composition string            `json:"composition"`
	Color       string            `json:"color"`
	Weight      string            `json:"weight"`
	Images      string            `json:"images"`
	CampaignID  string            `json:"campaign_id"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Campaign    *campaignResponse `json:"campaign"`
}

type createdProductRef struct {
	ProductID string `json:"productId"`
}

type createProductResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Product createdProductRef `json:"product"`
}

type listProductsResponse struct {
	Status   string            `json:"status"`
	Products []productResponse `json:"products"`
}

type getProductResponse struct {
	Status  string          `json:"status"`
	Product productResponse `json:"product"`
}

type catalogMessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
