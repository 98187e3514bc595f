package model

// Position locates a placement relative to the near corner of its pallet,
// in canonical centimeters.
type Position struct {
	X float64 `json:"x" example:"0"`
	Y float64 `json:"y" example:"0"`
	Z float64 `json:"z" example:"0"`
}

// Rotation holds per-axis rotation in degrees. Zero means the unit sits
// axis-aligned exactly as its dimensions were given; the shelf heuristic
// only ever emits a 90 degree yaw (Z).
type Rotation struct {
	X float64 `json:"x" example:"0"`
	Y float64 `json:"y" example:"0"`
	Z float64 `json:"z" example:"90"`
}

// Placement records one or more co-located units of a product positioned
// within a pallet arrangement. Quantity counts the identical units the
// entry covers, laid out consecutively along the x axis from Position.
//
// @Description Units of one product positioned on a pallet
type Placement struct {
	ProductID string `json:"product_id" example:"68b0c1f2a4d9e83716f5c001"`
	// Quantity is the number of identical units this entry covers
	Quantity int      `json:"quantity" example:"8"`
	Position Position `json:"position"`
	Rotation Rotation `json:"rotation"`
}

// PalletArrangement is one loaded pallet instance: the template it was
// built from (canonical units), its ordered placements, the loaded weight
// including tare, and the share of its usable stack volume consumed.
//
// @Description One loaded pallet with its placements and utilization
type PalletArrangement struct {
	Pallet     PalletTemplate `json:"pallet"`
	Placements []Placement    `json:"placements"`
	// TotalWeight is tare plus placed goods, in kilograms
	TotalWeight float64 `json:"total_weight" example:"105"`
	// Utilization is the percentage of footprint x stack-height volume used
	Utilization float64 `json:"utilization" example:"42.67"`
}

// OptimizationResult is the full outcome of one engine call. Partial
// placement is not a failure: Success stays true with a non-empty
// RemainingProducts list.
//
// @Description Packing outcome: arrangements, remainders, and utilization
type OptimizationResult struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty" example:"Optimization completed successfully"`
	// Utilization is placed volume over container interior volume, percent
	Utilization float64 `json:"utilization" example:"7.5"`
	// WeightUtilization is loaded weight over container capacity, percent;
	// absent when the container has no weight limit
	WeightUtilization *float64            `json:"weight_utilization,omitempty" example:"12.4"`
	Arrangements      []PalletArrangement `json:"pallet_arrangements"`
	// RemainingProducts is exactly the requested quantity that could not
	// be placed, tagged with the original products
	RemainingProducts []ProductRequest `json:"remaining_products"`
}

// PlacedQuantity sums the placed units of the product with the given ID
// across every arrangement.
func (r OptimizationResult) PlacedQuantity(productID string) int {
	total := 0
	for _, arr := range r.Arrangements {
		for _, pl := range arr.Placements {
			if pl.ProductID == productID {
				total += pl.Quantity
			}
		}
	}
	return total
}

// TotalPlaced sums placed units across all products and arrangements.
func (r OptimizationResult) TotalPlaced() int {
	total := 0
	for _, arr := range r.Arrangements {
		for _, pl := range arr.Placements {
			total += pl.Quantity
		}
	}
	return total
}

// Failed builds the failure-mode result for the given message: no
// arrangements, no remainders, zero utilization.
func Failed(message string) OptimizationResult {
	return OptimizationResult{
		Success:           false,
		Message:           message,
		Arrangements:      []PalletArrangement{},
		RemainingProducts: []ProductRequest{},
	}
}

// OptimizationSummary is the condensed projection of an OptimizationResult
// the quote flow persists and the dashboard lists. Always recomputed from
// a result, never independently mutated.
//
// @Description Condensed view of an optimization result
type OptimizationSummary struct {
	Success bool `json:"success" example:"true"`
	// Utilization is the overall volume utilization percentage
	Utilization float64 `json:"utilization" example:"7.5"`
	// TotalPallets is the number of pallet arrangements produced
	TotalPallets int `json:"total_pallets" example:"1"`
	// TotalProducts is the number of units placed
	TotalProducts int `json:"total_products" example:"10"`
	// RemainingProducts counts request entries left unplaced
	RemainingProducts int      `json:"remaining_products" example:"0"`
	WeightUtilization *float64 `json:"weight_utilization,omitempty" example:"12.4"`
	Message           string   `json:"message,omitempty" example:"Optimization completed successfully"`
}

// ValidationReport is the verdict of the product validator. Identifiers in
// InvalidProducts prefer name, then SKU, then ID.
//
// @Description Product validation verdict
type ValidationReport struct {
	Valid           bool     `json:"valid" example:"false"`
	InvalidProducts []string `json:"invalid_products" example:"Olive oil case"`
}
