package service

import "github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"

// DefaultContainerPresets returns the ISO container interiors offered when
// no preset configuration exists in storage.
func DefaultContainerPresets() []model.ContainerPreset {
	return []model.ContainerPreset{
		{
			Name: "20ft Standard",
			Container: model.Container{
				Dimensions: model.Dimensions{Length: 589.8, Width: 235.2, Height: 239.5, Unit: model.UnitCentimeters},
				MaxWeight:  28200,
			},
		},
		{
			Name: "40ft Standard",
			Container: model.Container{
				Dimensions: model.Dimensions{Length: 1203.2, Width: 235.2, Height: 239.0, Unit: model.UnitCentimeters},
				MaxWeight:  26600,
			},
		},
		{
			Name: "40ft High Cube",
			Container: model.Container{
				Dimensions: model.Dimensions{Length: 1203.2, Width: 235.2, Height: 269.8, Unit: model.UnitCentimeters},
				MaxWeight:  26330,
			},
		},
	}
}

// DefaultPalletPresets returns the pallet templates offered when no preset
// configuration exists in storage. The GMA pallet is specified in inches
// as its standard defines it; the normalizer converts it like any other
// input.
func DefaultPalletPresets() []model.PalletPreset {
	return []model.PalletPreset{
		{
			Name: "EUR-1",
			Pallet: model.PalletTemplate{
				Dimensions: model.Dimensions{Length: 120, Width: 80, Height: 14.4, Unit: model.UnitCentimeters},
				Weight:     25,
				MaxWeight:  1500,
			},
		},
		{
			Name: "EUR-2",
			Pallet: model.PalletTemplate{
				Dimensions: model.Dimensions{Length: 120, Width: 100, Height: 14.4, Unit: model.UnitCentimeters},
				Weight:     33,
				MaxWeight:  1250,
			},
		},
		{
			Name: "GMA 48x40",
			Pallet: model.PalletTemplate{
				Dimensions: model.Dimensions{Length: 48, Width: 40, Height: 6, Unit: model.UnitInches},
				Weight:     17,
				MaxWeight:  1360,
			},
		},
	}
}
