package service

import (
	"math"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
)

// positiveFinite reports whether v is a strictly positive, finite number.
func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// finiteNonNegative reports whether v is a finite number >= 0.
func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// dimensionsValid checks that all three components are finite and strictly
// positive and that the unit is recognized.
func dimensionsValid(d model.Dimensions) bool {
	if !model.KnownUnit(d.Unit) {
		return false
	}
	return positiveFinite(d.Length) && positiveFinite(d.Width) && positiveFinite(d.Height)
}

// requestValid applies the per-request validator checks: dimensions,
// weight, and quantity. Each is independent; any miss marks the whole
// request invalid.
func requestValid(req model.ProductRequest) bool {
	if !dimensionsValid(req.Product.Dimensions) {
		return false
	}
	if !finiteNonNegative(req.Product.Weight) {
		return false
	}
	return req.Quantity >= 0
}

// ValidateProducts checks every request and reports the identifiers of the
// invalid ones. The verdict is deterministic and idempotent: identifiers
// appear in request order, one entry per offending request.
func (s *OptimizerService) ValidateProducts(requests []model.ProductRequest) model.ValidationReport {
	report := model.ValidationReport{
		Valid:           true,
		InvalidProducts: []string{},
	}

	for _, req := range requests {
		if !requestValid(req) {
			report.Valid = false
			report.InvalidProducts = append(report.InvalidProducts, req.Product.Identifier())
		}
	}

	return report
}

// containerValid checks the optimize-call precondition on the container
// specification after normalization.
func containerValid(c model.Container) bool {
	return dimensionsValid(c.Dimensions) && !math.IsInf(c.MaxWeight, 0) && !math.IsNaN(c.MaxWeight)
}

// palletValid checks the optimize-call precondition on the pallet
// template after normalization. Tare must be a finite non-negative weight.
func palletValid(p model.PalletTemplate) bool {
	if !dimensionsValid(p.Dimensions) {
		return false
	}
	if !finiteNonNegative(p.Weight) {
		return false
	}
	return !math.IsInf(p.MaxWeight, 0) && !math.IsNaN(p.MaxWeight)
}
