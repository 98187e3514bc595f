package model

import "time"

// Product is a catalog item the engine treats as an immutable value
// borrowed for the duration of one optimization call.
//
// @Description Product with identity, dimensions, and unit weight in kilograms
type Product struct {
	// ID is the catalog identifier
	ID string `json:"id,omitempty" example:"68b0c1f2a4d9e83716f5c001"`
	// Name is the display name
	Name string `json:"name,omitempty" example:"Olive oil case"`
	// SKU is the stock keeping unit code
	SKU string `json:"sku,omitempty" example:"OO-12x1L"`
	// Dimensions of a single unit
	Dimensions Dimensions `json:"dimensions"`
	// Weight of a single unit in kilograms
	Weight    float64   `json:"weight" example:"9.6"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Identifier returns the most readable identity for reports:
// name first, then SKU, then ID.
func (p Product) Identifier() string {
	if p.Name != "" {
		return p.Name
	}
	if p.SKU != "" {
		return p.SKU
	}
	return p.ID
}

// ProductRequest pairs a product with a requested quantity. It is the unit
// of demand fed into the engine; zero-quantity requests are ignored.
//
// @Description Product plus the number of units to place
type ProductRequest struct {
	Product Product `json:"product"`
	// Quantity is the number of units requested (non-negative)
	Quantity int `json:"quantity" example:"10"`
}
