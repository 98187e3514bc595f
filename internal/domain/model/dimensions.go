// Package model defines the core domain entities for the pallet optimizer.
package model

// Unit identifies the measurement unit of a Dimensions value.
type Unit string

const (
	// UnitCentimeters is the canonical linear unit; all placement math runs in it.
	UnitCentimeters Unit = "cm"
	// UnitMillimeters converts at 10 mm per cm.
	UnitMillimeters Unit = "mm"
	// UnitInches converts at 2.54 cm per inch.
	UnitInches Unit = "in"
)

// KnownUnit reports whether u is a recognized measurement unit.
// An empty unit is accepted and treated as centimeters.
func KnownUnit(u Unit) bool {
	switch u {
	case "", UnitCentimeters, UnitMillimeters, UnitInches:
		return true
	}
	return false
}

// Dimensions describes the length, width, and height of a product, pallet,
// or container. Values are interpreted in Unit until normalized.
//
// @Description Length, width, and height with their measurement unit
// @Example {"length": 120, "width": 80, "height": 14.4, "unit": "cm"}
type Dimensions struct {
	// Length is the y-axis (depth) extent
	Length float64 `json:"length" example:"120" binding:"required,gt=0"`
	// Width is the x-axis extent
	Width float64 `json:"width" example:"80" binding:"required,gt=0"`
	// Height is the z-axis extent
	Height float64 `json:"height" example:"14.4" binding:"required,gt=0"`
	// Unit is one of cm, mm, in (defaults to cm)
	Unit Unit `json:"unit,omitempty" example:"cm"`
}

// Volume returns length * width * height in the dimensions' own unit cubed.
func (d Dimensions) Volume() float64 {
	return d.Length * d.Width * d.Height
}

// FootprintArea returns the length * width plan area, excluding height.
func (d Dimensions) FootprintArea() float64 {
	return d.Length * d.Width
}
