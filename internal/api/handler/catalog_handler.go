package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/promostore/catalog-api/internal/api/metrics"
	"github.com/promostore/catalog-api/internal/core/domain"
	"github.com/promostore/catalog-api/internal/core/ports"
)

// CatalogHandler handles HTTP requests for product operations.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// Create handles POST /products.
//
// @Summary      Create a product with its campaign
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        auth             header    string                true   "Bearer token"
// @Param        Idempotency-Key  header    string                false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createProductRequest  true   "Product details"
// @Success      201              {object}  createProductResponse
// @Failure      400              {object}  catalogErrorResponse
// @Failure      401              {object}  authErrorResponse
// @Failure      500              {object}  catalogErrorResponse
// @Router       /products [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, catalogErrorResponse{Status: "ERROR", Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, catalogErrorResponse{Status: "ERROR", Message: err.Error()})
	}

	idempotencyKey := c.Request().Header.Get("Idempotency-Key")

	result, err := h.service.CreateProduct(c.Request().Context(), toCreateInput(req, idempotencyKey))
	if err != nil {
		return catalogError(c, err)
	}

	status := http.StatusCreated
	if result.AlreadyExisted {
		metrics.ProductCreateReplaysTotal.Inc()
		status = http.StatusOK
	} else {
		metrics.ProductsCreatedTotal.WithLabelValues(req.Category).Inc()
	}

	return c.JSON(status, createProductResponse{
		Status:  "SUCCESS",
		Message: "Product created successfully",
		Product: createdProductRef{ProductID: result.ProductID},
	})
}

// List handles GET /products.
//
// @Summary      List all live products with their campaigns
// @Tags         products
// @Produce      json
// @Param        auth  header    string  true  "Bearer token"
// @Success      200   {object}  listProductsResponse
// @Failure      401   {object}  authErrorResponse
// @Failure      500   {object}  catalogErrorResponse
// @Router       /products [get]
func (h *CatalogHandler) List(c echo.Context) error {
	details, err := h.service.ListProducts(c.Request().Context())
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(http.StatusOK, toListResponse(details))
}

// Get handles GET /products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        auth  header    string  true  "Bearer token"
// @Param        id    path      string  true  "Product id"
// @Success      200   {object}  getProductResponse
// @Failure      401   {object}  authErrorResponse
// @Failure      404   {object}  catalogErrorResponse
// @Failure      500   {object}  catalogErrorResponse
// @Router       /products/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	detail, err := h.service.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(http.StatusOK, getProductResponse{
		Status:  "SUCCESS",
		Product: toProductResponse(*detail),
	})
}

// Update handles PUT /products/:id.
//
// @Summary      Update a product, optionally with its campaign
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        auth  header    string                true  "Bearer token"
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Product details; campaign optional"
// @Success      200   {object}  catalogMessageResponse
// @Failure      400   {object}  catalogErrorResponse
// @Failure      401   {object}  authErrorResponse
// @Failure      404   {object}  catalogErrorResponse
// @Failure      500   {object}  catalogErrorResponse
// @Router       /products/{id} [put]
func (h *CatalogHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, catalogErrorResponse{Status: "ERROR", Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, catalogErrorResponse{Status: "ERROR", Message: err.Error()})
	}

	if _, err := h.service.UpdateProduct(c.Request().Context(), c.Param("id"), toUpdateInput(req)); err != nil {
		return catalogError(c, err)
	}

	return c.JSON(http.StatusOK, catalogMessageResponse{
		Status:  "SUCCESS",
		Message: "Product updated successfully",
	})
}

// Delete handles DELETE /products/:id. Deleting an unknown or already
// deleted product succeeds, matching the soft-delete semantics.
//
// @Summary      Soft delete a product
// @Tags         products
// @Produce      json
// @Param        auth  header    string  true  "Bearer token"
// @Param        id    path      string  true  "Product id"
// @Success      200   {object}  catalogMessageResponse
// @Failure      401   {object}  authErrorResponse
// @Failure      500   {object}  catalogErrorResponse
// @Router       /products/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return catalogError(c, err)
	}

	metrics.ProductsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, catalogMessageResponse{
		Status:  "SUCCESS",
		Message: "Product deleted successfully",
	})
}

// catalogError maps service errors to the product-route error envelope.
func catalogError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return c.JSON(http.StatusNotFound, catalogErrorResponse{Status: "ERROR", Message: "Product not found"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, catalogErrorResponse{Status: "ERROR", Message: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, catalogErrorResponse{Status: "ERROR", Message: "internal error"})
}
