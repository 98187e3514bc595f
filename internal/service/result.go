package service

import (
	"fmt"
	"strings"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
)

// Messages surfaced on OptimizationResult. Callers render these to end
// users, so their wording is part of the engine contract.
const (
	// MessageNoProducts reports an empty request list.
	MessageNoProducts = "No products to optimize"
	// MessageInvalidContainer reports a container specification that failed
	// the optimize-call precondition.
	MessageInvalidContainer = "Invalid container specification"
	// MessageInvalidPallet reports a pallet template that failed the
	// optimize-call precondition.
	MessageInvalidPallet = "Invalid pallet template specification"
	// MessagePalletTooLarge reports a pallet template that does not fit the
	// container envelope at all.
	MessagePalletTooLarge = "Pallet template is too large for the container"
	// DefaultSuccessMessage is used when no custom success message is set.
	DefaultSuccessMessage = "Optimization completed successfully"
)

// invalidProductsMessage names every request that failed validation.
func invalidProductsMessage(identifiers []string) string {
	return "Invalid products: " + strings.Join(identifiers, ", ")
}

// oversizeMessage names every product that cannot physically fit.
func oversizeMessage(identifiers []string) string {
	if len(identifiers) == 1 {
		return fmt.Sprintf("Product %s is too large for the selected container and pallet", identifiers[0])
	}
	return "Products too large for the selected container and pallet: " + strings.Join(identifiers, ", ")
}

// assembleResult combines the placement outcome with the utilization
// figures into the final result. Partial placement is a success with a
// non-empty remainder, not a failure.
func (s *OptimizerService) assembleResult(out placementOutcome, container model.Container) model.OptimizationResult {
	arrangements := out.arrangements
	for i := range arrangements {
		arrangements[i].Utilization = roundPercent(arrangements[i].Utilization)
	}

	return model.OptimizationResult{
		Success:           true,
		Message:           s.successMessage,
		Utilization:       roundPercent(volumeUtilization(out.placedVolume, container)),
		WeightUtilization: weightUtilization(out.loadedWeight, container),
		Arrangements:      arrangements,
		RemainingProducts: out.remaining,
	}
}

// PrepareSummary projects a result into the condensed view the quote flow
// persists. It is a pure function and total over both outcomes; callers
// wanting pallet and weight figures must check Success first.
func (s *OptimizerService) PrepareSummary(result model.OptimizationResult) model.OptimizationSummary {
	return model.OptimizationSummary{
		Success:           result.Success,
		Utilization:       result.Utilization,
		TotalPallets:      len(result.Arrangements),
		TotalProducts:     result.TotalPlaced(),
		RemainingProducts: len(result.RemainingProducts),
		WeightUtilization: result.WeightUtilization,
		Message:           result.Message,
	}
}
