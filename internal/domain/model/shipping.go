package model

// Container is the interior envelope goods must fit inside. Exactly one
// container participates in an optimization call.
//
// @Description Container interior dimensions and total weight capacity
// @Example {"dimensions": {"length": 589.8, "width": 235.2, "height": 239.5, "unit": "cm"}, "max_weight": 28200}
type Container struct {
	Dimensions Dimensions `json:"dimensions"`
	// MaxWeight is the total capacity in kilograms for everything loaded,
	// pallet tare included. Zero or negative means no limit is enforced.
	MaxWeight float64 `json:"max_weight,omitempty" example:"28200"`
}

// HasWeightLimit reports whether the container enforces a weight capacity.
func (c Container) HasWeightLimit() bool {
	return c.MaxWeight > 0
}

// PalletTemplate describes the pallet the engine instantiates as many
// times as the container allows.
//
// @Description Pallet dimensions, tare weight, and goods capacity
// @Example {"dimensions": {"length": 120, "width": 80, "height": 14.4, "unit": "cm"}, "weight": 25, "max_weight": 1500}
type PalletTemplate struct {
	Dimensions Dimensions `json:"dimensions"`
	// Weight is the empty (tare) weight of one pallet in kilograms
	Weight float64 `json:"weight,omitempty" example:"25"`
	// MaxWeight is the goods capacity in kilograms, tare excluded.
	// Zero or negative means no limit is enforced.
	MaxWeight float64 `json:"max_weight,omitempty" example:"1500"`
}

// HasWeightLimit reports whether the pallet enforces a goods capacity.
func (p PalletTemplate) HasWeightLimit() bool {
	return p.MaxWeight > 0
}

// ContainerPreset is a named container template offered to the dashboard.
//
// @Description Named container template
type ContainerPreset struct {
	Name      string    `json:"name" example:"40ft High Cube"`
	Container Container `json:"container"`
}

// PalletPreset is a named pallet template offered to the dashboard.
//
// @Description Named pallet template
type PalletPreset struct {
	Name   string         `json:"name" example:"EUR-1"`
	Pallet PalletTemplate `json:"pallet"`
}
