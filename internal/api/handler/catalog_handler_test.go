package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/promostore/catalog-api/internal/core/domain"
	"github.com/promostore/catalog-api/internal/core/ports"
)

type stubCatalogService struct {
	createFn func(ctx context.Context, input ports.CreateProductInput) (*ports.CreateProductResult, error)
	listFn   func(ctx context.Context) ([]ports.ProductDetail, error)
	getFn    func(ctx context.Context, id string) (*ports.ProductDetail, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubCatalogService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*ports.CreateProductResult, error) {
	return s.createFn(ctx, input)
}

func (s *stubCatalogService) ListProducts(ctx context.Context) ([]ports.ProductDetail, error) {
	return s.listFn(ctx)
}

func (s *stubCatalogService) GetProduct(ctx context.Context, id string) (*ports.ProductDetail, error) {
	return s.getFn(ctx, id)
}

func (s *stubCatalogService) UpdateProduct(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubCatalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

const validProductBody = `{
	"name": "Shirt",
	"price": 20,
	"category": "Clothing",
	"stock": "15",
	"size": "M",
	"composition": "cotton",
	"color": "blue",
	"weight": "200g",
	"images": "shirt.png",
	"campaign": {"name": "Sale", "amount": 5, "percentage": "10"}
}`

func newCatalogTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCatalogHandler_Create_Success(t *testing.T) {
	stub := &stubCatalogService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*ports.CreateProductResult, error) {
			if input.Name != "Shirt" || input.Category != "Clothing" {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.Campaign.Name != "Sale" {
				t.Fatalf("campaign not mapped: %+v", input.Campaign)
			}
			return &ports.CreateProductResult{ProductID: "p-1"}, nil
		},
	}
	handler := NewCatalogHandler(stub)

	c, rec := newCatalogTestContext(t, http.MethodPost, "/products", validProductBody)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %v", resp["status"])
	}
	product, ok := resp["product"].(map[string]any)
	if !ok || product["productId"] != "p-1" {
		t.Fatalf("expected product.productId, got %+v", resp["product"])
	}
}

func TestCatalogHandler_Create_IdempotentReplay(t *testing.T) {
	stub := &stubCatalogService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*ports.CreateProductResult, error) {
			if input.IdempotencyKey != "key-1" {
				t.Fatalf("idempotency key not forwarded: %q", input.IdempotencyKey)
			}
			return &ports.CreateProductResult{ProductID: "p-1", AlreadyExisted: true}, nil
		},
	}
	handler := NewCatalogHandler(stub)

	c, rec := newCatalogTestContext(t, http.MethodPost, "/products", validProductBody)
	c.Request().Header.Set("Idempotency-Key", "key-1")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for replay, got %d", rec.Code)
	}
}

func TestCatalogHandler_Create_MissingCategory(t *testing.T) {
	stub := &stubCatalogService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*ports.CreateProductResult, error) {
			t.Fatalf("service must not be called on invalid payload")
			return nil, nil
		},
	}
	handler := NewCatalogHandler(stub)

	body := `{"name":"Shirt","price":20,"stock":"1","size":"M","composition":"c","color":"b","weight":"w","images":"i","campaign":{"name":"Sale","amount":5,"percentage":"10"}}`
	c, rec := newCatalogTestContext(t, http.MethodPost, "/products", body)

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["status"] != "ERROR" {
		t.Fatalf("expected ERROR envelope, got %s", rec.Body.String())
	}
}

func TestCatalogHandler_Create_BadCategoryValue(t *testing.T) {
	stub := &stubCatalogService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*ports.CreateProductResult, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	handler := NewCatalogHandler(stub)

	body := strings.Replace(validProductBody, `"Clothing"`, `"Toys"`, 1)
	c, rec := newCatalogTestContext(t, http.MethodPost, "/products", body)

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCatalogHandler_List_Success(t *testing.T) {
	now := time.Now().UTC()
	stub := &stubCatalogService{
		listFn: func(ctx context.Context) ([]ports.ProductDetail, error) {
			return []ports.ProductDetail{
				{
					Product: &domain.Product{
						ID:         "p-1",
						Name:       "Shirt",
						Price:      20,
						Category:   domain.CategoryClothing,
						CampaignID: "c-1",
						CreatedAt:  now,
						UpdatedAt:  now,
					},
					Campaign: &domain.Campaign{
						ID:        "c-1",
						ProductID: "p-1",
						Name:      "Sale",
						Amount:    5,
						CreatedAt: now,
						UpdatedAt: now,
					},
				},
			}, nil
		},
	}
	handler := NewCatalogHandler(stub)

	c, rec := newCatalogTestContext(t, http.MethodGet, "/products", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	products, ok := resp["products"].([]any)
	if !ok || len(products) != 1 {
		t.Fatalf("expected 1 product, got %+v", resp["products"])
	}
	first := products[0].(map[string]any)
	campaign, ok := first["campaign"].(map[string]any)
	if !ok || campaign["name"] != "Sale" {
		t.Fatalf("expected embedded campaign, got %+v", first["campaign"])
	}
}

func TestCatalogHandler_Get_NotFound(t *testing.T) {
	stub := &stubCatalogService{
		getFn: func(ctx context.Context, id string) (*ports.ProductDetail, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	handler := NewCatalogHandler(stub)

	c, rec := newCatalogTestContext(t, http.MethodGet, "/products/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	_ = handler.Get(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["status"] != "ERROR" || resp["message"] != "Product not found" {
		t.Fatalf("unexpected envelope: %s", rec.Body.String())
	}
}

func TestCatalogHandler_Get_MissingCampaignRendersNull(t *testing.T) {
	stub := &stubCatalogService{
		getFn: func(ctx context.Context, id string) (*ports.ProductDetail, error) {
			return &ports.ProductDetail{
				Product: &domain.Product{ID: id, Name: "Shirt", Category: domain.CategoryClothing, CampaignID: "gone"},
			}, nil
		},
	}
	handler := NewCatalogHandler(stub)

	c, rec := newCatalogTestContext(t, http.MethodGet, "/products/p-1", "")
	c.SetParamNames("id")
	c.SetParamValues("p-1")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	product := resp["product"].(map[string]any)
	if campaign, present := product["campaign"]; !present || campaign != nil {
		t.Fatalf("expected explicit null campaign, got %+v", product["campaign"])
	}
}

func TestCatalogHandler_Update_WithoutCampaign(t *testing.T) {
	stub := &stubCatalogService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
			if id != "p-1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if input.Campaign != nil {
				t.Fatalf("campaign must be nil when omitted")
			}
			return &domain.Product{ID: id}, nil
		},
	}
	handler := NewCatalogHandler(stub)

	body := `{"name":"Shirt","price":25,"category":"Clothing","stock":"1","size":"M","composition":"c","color":"b","weight":"w","images":"i"}`
	c, rec := newCatalogTestContext(t, http.MethodPut, "/products/p-1", body)
	c.SetParamNames("id")
	c.SetParamValues("p-1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCatalogHandler_Update_WithCampaign(t *testing.T) {
	stub := &stubCatalogService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
			if input.Campaign == nil || input.Campaign.Name != "Clearance" {
				t.Fatalf("campaign not forwarded: %+v", input.Campaign)
			}
			return &domain.Product{ID: id}, nil
		},
	}
	handler := NewCatalogHandler(stub)

	body := `{"name":"Shirt","price":25,"category":"Clothing","stock":"1","size":"M","composition":"c","color":"b","weight":"w","images":"i","campaign":{"name":"Clearance","amount":8,"percentage":"25"}}`
	c, _ := newCatalogTestContext(t, http.MethodPut, "/products/p-1", body)
	c.SetParamNames("id")
	c.SetParamValues("p-1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestCatalogHandler_Update_NotFound(t *testing.T) {
	stub := &stubCatalogService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	handler := NewCatalogHandler(stub)

	c, rec := newCatalogTestContext(t, http.MethodPut, "/products/missing", validProductBody)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	_ = handler.Update(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCatalogHandler_Delete_Success(t *testing.T) {
	deleted := ""
	stub := &stubCatalogService{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	handler := NewCatalogHandler(stub)

	c, rec := newCatalogTestContext(t, http.MethodDelete, "/products/p-1", "")
	c.SetParamNames("id")
	c.SetParamValues("p-1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != "p-1" {
		t.Fatalf("delete not forwarded, got %q", deleted)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "Product deleted successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}
