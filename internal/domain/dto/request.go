// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
)

// OptimizeRequest represents the JSON request body for the optimization
// endpoints.
//
// Products may carry inline dimensions or reference catalog entries by id
// or sku. The container and pallet are given either inline or as the name
// of a stored preset; exactly one of each pair must be set.
//
// @Description Request to compute a packing plan for a set of products
// @Example {"products": [{"product": {"name": "Olive oil case", "dimensions": {"length": 40, "width": 30, "height": 25, "unit": "cm"}, "weight": 9.6}, "quantity": 500}], "container_preset": "20ft Standard", "pallet_preset": "EUR-1"}
type OptimizeRequest struct {
	// Products is the list of product requests to place.
	Products []model.ProductRequest `json:"products" binding:"required"`
	// Container is an inline container specification.
	Container *model.Container `json:"container,omitempty"`
	// ContainerPreset names a stored container preset instead.
	ContainerPreset string `json:"container_preset,omitempty" example:"20ft Standard"`
	// Pallet is an inline pallet template.
	Pallet *model.PalletTemplate `json:"pallet,omitempty"`
	// PalletPreset names a stored pallet preset instead.
	PalletPreset string `json:"pallet_preset,omitempty" example:"EUR-1"`
} // @name OptimizeRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrNoProducts is returned when the product list is missing or empty.
	ErrNoProducts = &ValidationError{
		Field:   "products",
		Message: "at least one product request is required",
	}
	// ErrContainerChoice is returned unless exactly one container source is given.
	ErrContainerChoice = &ValidationError{
		Field:   "container",
		Message: "provide exactly one of container or container_preset",
	}
	// ErrPalletChoice is returned unless exactly one pallet source is given.
	ErrPalletChoice = &ValidationError{
		Field:   "pallet",
		Message: "provide exactly one of pallet or pallet_preset",
	}
	// ErrUnknownUnit is returned for a measurement unit the engine does not know.
	ErrUnknownUnit = &ValidationError{
		Field:   "dimensions.unit",
		Message: "unit must be one of cm, mm, in",
	}
	// ErrPresetNames is returned when preset entries lack unique names.
	ErrPresetNames = &ValidationError{
		Field:   "name",
		Message: "every preset needs a unique, non-empty name",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs cross-field validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *OptimizeRequest) Validate() error {
	if len(r.Products) == 0 {
		return ErrNoProducts
	}
	if (r.Container == nil) == (r.ContainerPreset == "") {
		return ErrContainerChoice
	}
	if (r.Pallet == nil) == (r.PalletPreset == "") {
		return ErrPalletChoice
	}
	return nil
}

// ValidateProductsRequest represents the JSON request body for the product
// validation endpoint.
//
// @Description Request to validate product specifications without optimizing
type ValidateProductsRequest struct {
	// Products is the list of product requests to check.
	Products []model.ProductRequest `json:"products" binding:"required"`
} // @name ValidateProductsRequest

// Validate performs custom validation on the request.
func (r *ValidateProductsRequest) Validate() error {
	if len(r.Products) == 0 {
		return ErrNoProducts
	}
	return nil
}

// CreateQuoteRequest represents the JSON request body for creating a quote.
// It is an optimization request plus quote metadata.
//
// @Description Request to optimize and persist the outcome as a quote
type CreateQuoteRequest struct {
	OptimizeRequest
	// Note is free-form text attached to the quote.
	Note string `json:"note,omitempty" example:"rush order, confirm by Friday"`
} // @name CreateQuoteRequest

// CreateProductRequest represents the JSON request body for adding a
// catalog product.
//
// @Description Request to add a product to the catalog
type CreateProductRequest struct {
	// Name is the display name.
	Name string `json:"name" binding:"required" example:"Olive oil case"`
	// SKU is an optional stock keeping unit code, unique when set.
	SKU string `json:"sku,omitempty" example:"OO-12x1L"`
	// Dimensions of a single unit.
	Dimensions model.Dimensions `json:"dimensions" binding:"required"`
	// Weight of a single unit in kilograms.
	Weight float64 `json:"weight" binding:"gte=0" example:"9.6"`
} // @name CreateProductRequest

// Validate performs custom validation on the request.
func (r *CreateProductRequest) Validate() error {
	if !model.KnownUnit(r.Dimensions.Unit) {
		return ErrUnknownUnit
	}
	return nil
}

// UpdateProductRequest represents the JSON request body for updating a
// catalog product. All fields are replaced.
//
// @Description Request to update a catalog product
type UpdateProductRequest struct {
	Name       string           `json:"name" binding:"required" example:"Olive oil case"`
	SKU        string           `json:"sku,omitempty" example:"OO-12x1L"`
	Dimensions model.Dimensions `json:"dimensions" binding:"required"`
	Weight     float64          `json:"weight" binding:"gte=0" example:"9.6"`
} // @name UpdateProductRequest

// Validate performs custom validation on the request.
func (r *UpdateProductRequest) Validate() error {
	if !model.KnownUnit(r.Dimensions.Unit) {
		return ErrUnknownUnit
	}
	return nil
}

// ReplaceContainerPresetsRequest represents the JSON request body for
// replacing the active container preset set.
//
// @Description Request to replace the active container presets
type ReplaceContainerPresetsRequest struct {
	Containers []model.ContainerPreset `json:"containers" binding:"required,min=1,dive"`
} // @name ReplaceContainerPresetsRequest

// Validate checks that preset names are present and unique.
func (r *ReplaceContainerPresetsRequest) Validate() error {
	seen := make(map[string]bool, len(r.Containers))
	for _, preset := range r.Containers {
		if preset.Name == "" || seen[preset.Name] {
			return ErrPresetNames
		}
		seen[preset.Name] = true
	}
	return nil
}

// ReplacePalletPresetsRequest represents the JSON request body for
// replacing the active pallet preset set.
//
// @Description Request to replace the active pallet presets
type ReplacePalletPresetsRequest struct {
	Pallets []model.PalletPreset `json:"pallets" binding:"required,min=1,dive"`
} // @name ReplacePalletPresetsRequest

// Validate checks that preset names are present and unique.
func (r *ReplacePalletPresetsRequest) Validate() error {
	seen := make(map[string]bool, len(r.Pallets))
	for _, preset := range r.Pallets {
		if preset.Name == "" || seen[preset.Name] {
			return ErrPresetNames
		}
		seen[preset.Name] = true
	}
	return nil
}

// ListProductsQuery carries the query parameters of the product list
// endpoint.
type ListProductsQuery struct {
	// IncludeRetired also returns soft-deleted products.
	IncludeRetired bool  `form:"include_retired"`
	Limit          int64 `form:"limit,default=50" binding:"gte=0,lte=500"`
	Skip           int64 `form:"skip,default=0" binding:"gte=0"`
} // @name ListProductsQuery

// ListQuotesQuery carries the query parameters of the quote list endpoint.
type ListQuotesQuery struct {
	Limit int64 `form:"limit,default=20" binding:"gte=0,lte=200"`
	Skip  int64 `form:"skip,default=0" binding:"gte=0"`
} // @name ListQuotesQuery
