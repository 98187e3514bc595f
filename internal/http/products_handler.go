package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/dto"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/i18n"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/service"
)

// ProductsHandler provides HTTP handlers for catalog product routes.
type ProductsHandler struct {
	catalog service.CatalogService
}

// NewProductsHandler creates a new ProductsHandler instance.
func NewProductsHandler(catalog service.CatalogService) *ProductsHandler {
	return &ProductsHandler{catalog: catalog}
}

// catalogError maps catalog service failures to HTTP responses.
func catalogError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, service.ErrDuplicateSKU):
		builder.Error(http.StatusConflict, i18n.ErrKeyDuplicateSKU, err)
	case errors.Is(err, service.ErrRepositoryNotConfigured):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyDatabaseDisabled, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// productID parses the :id path parameter. On failure it writes the error
// response and returns ok=false.
func productID(c *gin.Context, builder *ResponseBuilder) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest,
			map[string]string{"id": "must be a 24 character hex object id"}, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

// ListProducts handles GET /api/v1/products requests.
//
// @Summary      List catalog products
// @Description  Returns a page of catalog products sorted by name. Retired products are excluded unless include_retired is set.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        limit query int false "Page size" default(50)
// @Param        skip query int false "Offset into the result set" default(0)
// @Param        include_retired query bool false "Also return soft-deleted products"
// @Success      200 {object} dto.SuccessResponse{data=dto.ProductListResponse} "Catalog products page"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid query parameters"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - requires a database"
// @Router       /api/v1/products [get]
func (h *ProductsHandler) ListProducts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var query dto.ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	docs, err := h.catalog.ListProducts(c.Request.Context(), query.Limit, query.Skip, query.IncludeRetired)
	if err != nil {
		catalogError(builder, err)
		return
	}

	products := make([]model.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, doc.ToModel())
	}

	builder.SuccessOK(dto.ProductListResponse{
		Products: products,
		Count:    len(products),
	})
}

// CreateProduct handles POST /api/v1/products requests.
//
// @Summary      Add a catalog product
// @Description  Stores a new catalog product. The SKU, when given, must be unique among all products including retired ones.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateProductRequest true "Product to add"
// @Success      201 {object} dto.SuccessResponse{data=model.Product} "Stored product"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Conflict - SKU already in use"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - requires a database"
// @Router       /api/v1/products [post]
func (h *ProductsHandler) CreateProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, validationDetails(err), err)
		return
	}

	doc, err := h.catalog.CreateProduct(c.Request.Context(), model.Product{
		Name:       req.Name,
		SKU:        req.SKU,
		Dimensions: req.Dimensions,
		Weight:     req.Weight,
	})
	if err != nil {
		catalogError(builder, err)
		return
	}

	auditLog(c, "create_product", "Catalog product created", map[string]interface{}{
		"product_id": doc.ID.Hex(),
		"sku":        doc.SKU,
	})

	builder.SuccessCreated(doc.ToModel())
}

// GetProduct handles GET /api/v1/products/:id requests.
//
// @Summary      Get a catalog product
// @Description  Returns a single catalog product by id. Retired products are still returned so saved quotes keep their line items resolvable.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product object id"
// @Success      200 {object} dto.SuccessResponse{data=model.Product} "Catalog product"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed id"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown product id"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - requires a database"
// @Router       /api/v1/products/{id} [get]
func (h *ProductsHandler) GetProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := productID(c, builder)
	if !ok {
		return
	}

	doc, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		catalogError(builder, err)
		return
	}
	if doc == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	builder.SuccessOK(doc.ToModel())
}

// UpdateProduct handles PUT /api/v1/products/:id requests.
//
// @Summary      Update a catalog product
// @Description  Replaces the name, SKU, dimensions and weight of a catalog product. Stored quotes keep the values they were created with.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product object id"
// @Param        request body dto.UpdateProductRequest true "New product values"
// @Success      200 {object} dto.SuccessResponse{data=model.Product} "Updated product"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown product id"
// @Failure      409 {object} dto.ErrorResponse "Conflict - SKU already in use"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - requires a database"
// @Router       /api/v1/products/{id} [put]
func (h *ProductsHandler) UpdateProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := productID(c, builder)
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, validationDetails(err), err)
		return
	}

	doc, err := h.catalog.UpdateProduct(c.Request.Context(), id, model.Product{
		Name:       req.Name,
		SKU:        req.SKU,
		Dimensions: req.Dimensions,
		Weight:     req.Weight,
	})
	if err != nil {
		catalogError(builder, err)
		return
	}
	if doc == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	auditLog(c, "update_product", "Catalog product updated", map[string]interface{}{
		"product_id": doc.ID.Hex(),
		"sku":        doc.SKU,
	})

	builder.SuccessOK(doc.ToModel())
}

// DeleteProduct handles DELETE /api/v1/products/:id requests.
//
// @Summary      Retire a catalog product
// @Description  Soft deletes a catalog product. Retired products disappear from listings and optimization lookups but stay resolvable for stored quotes.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product object id"
// @Success      200 {object} dto.SuccessResponse "Product retired"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed id"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown product id"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - requires a database"
// @Router       /api/v1/products/{id} [delete]
func (h *ProductsHandler) DeleteProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := productID(c, builder)
	if !ok {
		return
	}

	// The repository soft delete does not report unknown ids; look the
	// product up first so the route can 404.
	doc, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		catalogError(builder, err)
		return
	}
	if doc == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	if err := h.catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		catalogError(builder, err)
		return
	}

	auditLog(c, "delete_product", "Catalog product retired", map[string]interface{}{
		"product_id": id.Hex(),
		"sku":        doc.SKU,
	})

	builder.SuccessOK(map[string]interface{}{"id": id.Hex(), "deleted": true})
}
