package service

import (
	"testing"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func dims(l, w, h float64) model.Dimensions {
	return model.Dimensions{Length: l, Width: w, Height: h, Unit: model.UnitCentimeters}
}

func TestPalletFitsContainer(t *testing.T) {
	container := model.Container{Dimensions: dims(100, 100, 100)}

	tests := []struct {
		name   string
		pallet model.PalletTemplate
		fits   bool
	}{
		{
			name:   "smaller on every axis",
			pallet: model.PalletTemplate{Dimensions: dims(80, 80, 14.4)},
			fits:   true,
		},
		{
			name:   "exact footprint",
			pallet: model.PalletTemplate{Dimensions: dims(100, 100, 14.4)},
			fits:   true,
		},
		{
			name:   "fits only rotated",
			pallet: model.PalletTemplate{Dimensions: dims(60, 100, 14.4)},
			fits:   true,
		},
		{
			name:   "footprint too large both ways",
			pallet: model.PalletTemplate{Dimensions: dims(120, 120, 14.4)},
			fits:   false,
		},
		{
			name:   "taller than the container",
			pallet: model.PalletTemplate{Dimensions: dims(80, 80, 101)},
			fits:   false,
		},
		{
			name:   "conversion jitter is absorbed",
			pallet: model.PalletTemplate{Dimensions: dims(100.0000001, 100, 14.4)},
			fits:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fits, palletFitsContainer(tt.pallet, container))
		})
	}
}

func TestUnitFitsContainer(t *testing.T) {
	container := model.Container{Dimensions: dims(100, 50, 30)}

	tests := []struct {
		name string
		unit model.Dimensions
		fits bool
	}{
		{
			name: "fits as given",
			unit: dims(90, 40, 20),
			fits: true,
		},
		{
			name: "fits only lying down",
			unit: dims(10, 10, 90),
			fits: true,
		},
		{
			name: "fits only with every axis remapped",
			unit: dims(30, 100, 50),
			fits: true,
		},
		{
			name: "one extent exceeds every axis",
			unit: dims(101, 10, 10),
			fits: false,
		},
		{
			name: "volume fits but no orientation does",
			unit: dims(60, 60, 10),
			fits: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fits, unitFitsContainer(tt.unit, container))
		})
	}
}

func TestUnitFitsPallet(t *testing.T) {
	pallet := model.PalletTemplate{Dimensions: dims(120, 80, 14.4)}

	tests := []struct {
		name    string
		unit    model.Dimensions
		ceiling float64
		fits    bool
	}{
		{
			name:    "fits the footprint upright",
			unit:    dims(100, 60, 50),
			ceiling: 200,
			fits:    true,
		},
		{
			name:    "fits the footprint only yaw rotated",
			unit:    dims(70, 110, 50),
			ceiling: 200,
			fits:    true,
		},
		{
			name:    "taller than the goods ceiling",
			unit:    dims(10, 10, 201),
			ceiling: 200,
			fits:    false,
		},
		{
			name:    "would fit lying down but tipping is not allowed",
			unit:    dims(10, 10, 300),
			ceiling: 200,
			fits:    false,
		},
		{
			name:    "overhangs both ways",
			unit:    dims(130, 90, 50),
			ceiling: 200,
			fits:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fits, unitFitsPallet(tt.unit, pallet, tt.ceiling))
		})
	}
}

func TestOversizedItems(t *testing.T) {
	container := model.Container{Dimensions: dims(100, 100, 100)}
	pallet := model.PalletTemplate{Dimensions: dims(80, 80, 20)}
	ceiling := 80.0

	item := func(name string, d model.Dimensions) workItem {
		p := model.Product{Name: name, Dimensions: d}
		return workItem{original: p, product: p}
	}

	t.Run("keeps input order and reports each product once", func(t *testing.T) {
		items := []workItem{
			item("giant", dims(200, 10, 10)),
			item("ok", dims(10, 10, 10)),
			item("wide", dims(90, 90, 10)),
			item("giant", dims(200, 10, 10)),
		}
		assert.Equal(t, []string{"giant", "wide"}, oversizedItems(items, container, pallet, ceiling))
	})

	t.Run("empty when everything fits", func(t *testing.T) {
		items := []workItem{item("ok", dims(10, 10, 10))}
		assert.Empty(t, oversizedItems(items, container, pallet, ceiling))
	})
}

func TestSortItems(t *testing.T) {
	item := func(name string, side float64) workItem {
		p := model.Product{Name: name, Dimensions: dims(side, side, side)}
		return workItem{product: p, volume: p.Dimensions.Volume()}
	}

	t.Run("largest volume first", func(t *testing.T) {
		items := []workItem{item("small", 10), item("large", 40), item("medium", 20)}
		sortItems(items)

		assert.Equal(t, "large", items[0].product.Name)
		assert.Equal(t, "medium", items[1].product.Name)
		assert.Equal(t, "small", items[2].product.Name)
	})

	t.Run("identifier breaks volume ties", func(t *testing.T) {
		items := []workItem{item("zulu", 10), item("alpha", 10), item("mike", 10)}
		sortItems(items)

		assert.Equal(t, "alpha", items[0].product.Name)
		assert.Equal(t, "mike", items[1].product.Name)
		assert.Equal(t, "zulu", items[2].product.Name)
	})
}

func TestShelfCursor_Seat(t *testing.T) {
	const (
		palletL = 40.0
		palletW = 30.0
		ceiling = 25.0
	)

	t.Run("advances across the row", func(t *testing.T) {
		c := shelfCursor{}

		next, pos, rotated, ok := c.seat(palletL, palletW, ceiling, 10, 20, 5)
		assert.True(t, ok)
		assert.False(t, rotated)
		assert.Equal(t, model.Position{X: 0, Y: 0, Z: 0}, pos)
		assert.Equal(t, 10.0, next.x)
		assert.Equal(t, 20.0, next.rowDepth)
		assert.Equal(t, 5.0, next.layerHeight)

		next, pos, _, ok = next.seat(palletL, palletW, ceiling, 10, 20, 5)
		assert.True(t, ok)
		assert.Equal(t, model.Position{X: 10, Y: 0, Z: 0}, pos)
		assert.Equal(t, 20.0, next.x)
	})

	t.Run("rotates when the given orientation does not fit", func(t *testing.T) {
		c := shelfCursor{x: 20}

		// 15 wide does not fit the 10 left in the row; 8 rotated does.
		next, pos, rotated, ok := c.seat(palletL, palletW, ceiling, 15, 8, 5)
		assert.True(t, ok)
		assert.True(t, rotated)
		assert.Equal(t, model.Position{X: 20, Y: 0, Z: 0}, pos)
		assert.Equal(t, 28.0, next.x)
		assert.Equal(t, 15.0, next.rowDepth)
	})

	t.Run("wraps to the next row", func(t *testing.T) {
		c := shelfCursor{x: 25, rowDepth: 12, layerHeight: 5}

		next, pos, _, ok := c.seat(palletL, palletW, ceiling, 10, 10, 5)
		assert.True(t, ok)
		assert.Equal(t, model.Position{X: 0, Y: 12, Z: 0}, pos)
		assert.Equal(t, 10.0, next.x)
		assert.Equal(t, 12.0, next.y)
	})

	t.Run("wraps to the next layer", func(t *testing.T) {
		c := shelfCursor{x: 25, y: 35, rowDepth: 5, layerHeight: 8}

		// No row or column space left on this layer.
		next, pos, _, ok := c.seat(palletL, palletW, ceiling, 10, 10, 5)
		assert.True(t, ok)
		assert.Equal(t, model.Position{X: 0, Y: 0, Z: 8}, pos)
		assert.Equal(t, 8.0, next.z)
	})

	t.Run("fails when the ceiling is reached", func(t *testing.T) {
		c := shelfCursor{z: 21}

		next, _, _, ok := c.seat(palletL, palletW, ceiling, 10, 10, 5)
		assert.False(t, ok)
		assert.Equal(t, c, next, "failed seat leaves the cursor untouched")
	})

	t.Run("fails when the unit exceeds the footprint", func(t *testing.T) {
		c := shelfCursor{}

		next, _, _, ok := c.seat(palletL, palletW, ceiling, 35, 45, 5)
		assert.False(t, ok)
		assert.Equal(t, c, next)
	})
}

func TestPlacementStatePool(t *testing.T) {
	t.Run("provides zero length scratch space", func(t *testing.T) {
		state := getPlacementState(10)
		defer putPlacementState(state)

		assert.Len(t, state.items, 0)
		assert.GreaterOrEqual(t, cap(state.items), 10)
	})

	t.Run("grows for large requests", func(t *testing.T) {
		state := getPlacementState(5000)
		defer putPlacementState(state)

		assert.GreaterOrEqual(t, cap(state.items), 5000)
	})
}
