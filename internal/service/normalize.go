package service

import "github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"

// Conversion factors into the canonical centimeter unit.
const (
	centimetersPerInch       = 2.54
	centimetersPerMillimeter = 0.1
)

// toCentimeters converts a linear value from the given unit to centimeters.
// Unrecognized units pass through unchanged; rejecting them is the
// validator's job, not the normalizer's.
func toCentimeters(value float64, unit model.Unit) float64 {
	switch unit {
	case model.UnitMillimeters:
		return value * centimetersPerMillimeter
	case model.UnitInches:
		return value * centimetersPerInch
	default:
		return value
	}
}

// NormalizeDimensions returns the equivalent dimensions in canonical
// centimeters. Weights are already kilograms everywhere and need no
// conversion. Pure function; the input is never mutated.
func NormalizeDimensions(d model.Dimensions) model.Dimensions {
	return model.Dimensions{
		Length: toCentimeters(d.Length, d.Unit),
		Width:  toCentimeters(d.Width, d.Unit),
		Height: toCentimeters(d.Height, d.Unit),
		Unit:   model.UnitCentimeters,
	}
}

// normalizeProduct returns a copy of p with canonical dimensions.
func normalizeProduct(p model.Product) model.Product {
	p.Dimensions = NormalizeDimensions(p.Dimensions)
	return p
}

// normalizeContainer returns a copy of c with canonical dimensions.
func normalizeContainer(c model.Container) model.Container {
	c.Dimensions = NormalizeDimensions(c.Dimensions)
	return c
}

// normalizePallet returns a copy of p with canonical dimensions.
func normalizePallet(p model.PalletTemplate) model.PalletTemplate {
	p.Dimensions = NormalizeDimensions(p.Dimensions)
	return p
}
