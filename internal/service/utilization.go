package service

import (
	"math"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
)

// clampPercent bounds a percentage to [0, 100]. Well-formed inputs never
// exceed the range; the clamp guards rounding drift.
func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// roundPercent rounds a percentage to two decimal places for display.
// Internal math stays at full precision until this point.
func roundPercent(v float64) float64 {
	return math.Round(v*100) / 100
}

// volumeUtilization is placed volume over the container interior volume,
// as a percentage.
func volumeUtilization(placedVolume float64, container model.Container) float64 {
	interior := container.Dimensions.Volume()
	if interior <= 0 {
		return 0
	}
	return clampPercent(placedVolume / interior * 100)
}

// weightUtilization is the loaded weight (goods plus tares) over the
// container capacity, as a percentage. It is absent, not zero, when the
// container has no weight limit.
func weightUtilization(loadedWeight float64, container model.Container) *float64 {
	if !container.HasWeightLimit() {
		return nil
	}
	v := roundPercent(clampPercent(loadedWeight / container.MaxWeight * 100))
	return &v
}
