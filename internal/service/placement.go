package service

import (
	"sort"
	"sync"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
)

// dimensionEpsilon absorbs the float rounding that unit conversion
// introduces so equivalent sizes are never spuriously rejected.
const dimensionEpsilon = 1e-6

// workItem tracks one product request through placement. The original
// product is kept verbatim for remainder reporting; the normalized copy
// drives all geometry.
type workItem struct {
	original  model.Product
	product   model.Product
	requested int
	remaining int
	volume    float64
}

// placementState holds the work-item scratch slice for reuse via sync.Pool.
// This keeps per-call allocations flat for high-volume traffic.
type placementState struct {
	items []workItem
}

// placementPool provides reusable placement state to reduce GC pressure.
var placementPool = sync.Pool{
	New: func() interface{} {
		return &placementState{
			items: make([]workItem, 0, 64),
		}
	},
}

// getPlacementState retrieves a placementState from the pool with
// sufficient capacity and zero length.
func getPlacementState(size int) *placementState {
	state, _ := placementPool.Get().(*placementState)
	if state == nil {
		state = &placementState{items: make([]workItem, 0, 64)}
	}
	if cap(state.items) < size {
		state.items = make([]workItem, 0, size)
	} else {
		state.items = state.items[:0]
	}
	return state
}

// putPlacementState returns a placementState to the pool for reuse.
func putPlacementState(state *placementState) {
	// Drop oversized backing arrays so the pool stays small
	if cap(state.items) > 4096 {
		state.items = make([]workItem, 0, 64)
	} else {
		state.items = state.items[:0]
	}
	placementPool.Put(state)
}

// placementOutcome carries the raw placement results to the assembler.
type placementOutcome struct {
	arrangements []model.PalletArrangement
	remaining    []model.ProductRequest
	placedVolume float64
	loadedWeight float64 // goods plus tare of every opened pallet
}

// palletFitsContainer reports whether a single pallet instance fits the
// container envelope at all, yaw rotation allowed.
func palletFitsContainer(pallet model.PalletTemplate, container model.Container) bool {
	if pallet.Dimensions.Height > container.Dimensions.Height+dimensionEpsilon {
		return false
	}
	pl, pw := pallet.Dimensions.Length, pallet.Dimensions.Width
	cl, cw := container.Dimensions.Length, container.Dimensions.Width
	if pl <= cl+dimensionEpsilon && pw <= cw+dimensionEpsilon {
		return true
	}
	return pw <= cl+dimensionEpsilon && pl <= cw+dimensionEpsilon
}

// fitsEnvelope reports whether an l x w x h box fits inside L x W x H.
func fitsEnvelope(l, w, h, maxL, maxW, maxH float64) bool {
	return l <= maxL+dimensionEpsilon && w <= maxW+dimensionEpsilon && h <= maxH+dimensionEpsilon
}

// unitFitsContainer checks every axis-aligned orientation of the unit
// against the container interior.
func unitFitsContainer(d model.Dimensions, container model.Container) bool {
	l, w, h := d.Length, d.Width, d.Height
	c := container.Dimensions
	orientations := [6][3]float64{
		{l, w, h}, {l, h, w},
		{w, l, h}, {w, h, l},
		{h, l, w}, {h, w, l},
	}
	for _, o := range orientations {
		if fitsEnvelope(o[0], o[1], o[2], c.Length, c.Width, c.Height) {
			return true
		}
	}
	return false
}

// unitFitsPallet checks whether one upright unit fits the pallet footprint
// (as given or yaw-rotated) with its height under the stack ceiling.
func unitFitsPallet(d model.Dimensions, pallet model.PalletTemplate, ceiling float64) bool {
	if d.Height > ceiling+dimensionEpsilon {
		return false
	}
	pl, pw := pallet.Dimensions.Length, pallet.Dimensions.Width
	if d.Length <= pl+dimensionEpsilon && d.Width <= pw+dimensionEpsilon {
		return true
	}
	return d.Width <= pl+dimensionEpsilon && d.Length <= pw+dimensionEpsilon
}

// oversizedItems returns the identifiers of products that cannot fit the
// container in any orientation or cannot seat even one unit on a pallet.
// Identifiers keep input order and are reported once each.
func oversizedItems(items []workItem, container model.Container, pallet model.PalletTemplate, ceiling float64) []string {
	var ids []string
	seen := make(map[string]bool, len(items))
	for i := range items {
		d := items[i].product.Dimensions
		if unitFitsContainer(d, container) && unitFitsPallet(d, pallet, ceiling) {
			continue
		}
		id := items[i].product.Identifier()
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// sortItems orders work items largest unit volume first, identifier as the
// tie breaker, giving one deterministic total order regardless of how the
// caller arranged the requests.
func sortItems(items []workItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].volume != items[j].volume {
			return items[i].volume > items[j].volume
		}
		return items[i].product.Identifier() < items[j].product.Identifier()
	})
}

// shelfCursor walks a pallet footprint row by row, layer by layer:
// x advances by unit width across the pallet width, y by row depth along
// the pallet length, z by layer height up to the stack ceiling.
type shelfCursor struct {
	x, y, z     float64
	rowDepth    float64
	layerHeight float64
}

// seat finds the next spot for one w x l x h unit, trying the given
// orientation first and the 90 degree yaw second, wrapping rows and layers
// as needed. It returns the advanced cursor, the seated position, and
// whether the unit was rotated. The receiver is a value: a failed seat
// leaves the caller's cursor untouched.
func (c shelfCursor) seat(palletL, palletW, ceiling, w, l, h float64) (shelfCursor, model.Position, bool, bool) {
	for {
		if c.z+h > ceiling+dimensionEpsilon {
			return c, model.Position{}, false, false
		}

		type orientation struct {
			w, l    float64
			rotated bool
		}
		for _, o := range [2]orientation{{w, l, false}, {l, w, true}} {
			if c.x+o.w <= palletW+dimensionEpsilon && c.y+o.l <= palletL+dimensionEpsilon {
				pos := model.Position{X: c.x, Y: c.y, Z: c.z}
				c.x += o.w
				if o.l > c.rowDepth {
					c.rowDepth = o.l
				}
				if h > c.layerHeight {
					c.layerHeight = h
				}
				return c, pos, o.rotated, true
			}
		}

		// Wrap to the next row, then to the next layer
		if c.x > dimensionEpsilon {
			c.y += c.rowDepth
			c.x = 0
			c.rowDepth = 0
			continue
		}
		if c.y > dimensionEpsilon {
			c.z += c.layerHeight
			c.x, c.y = 0, 0
			c.rowDepth, c.layerHeight = 0, 0
			continue
		}
		// Fresh layer position and still no fit
		return c, model.Position{}, false, false
	}
}

// palletLoad accumulates the state of one pallet instance being filled.
type palletLoad struct {
	placements   []model.Placement
	goodsWeight  float64
	placedVolume float64
	opened       bool // tare already counted toward the container total
	cursor       shelfCursor
}

// placementRun coalesces consecutive same-product units in one row into a
// single placement entry.
type placementRun struct {
	productID string
	quantity  int
	position  model.Position
	rotated   bool
	active    bool
}

func (r *placementRun) flush(dst *[]model.Placement) {
	if !r.active || r.quantity == 0 {
		return
	}
	p := model.Placement{
		ProductID: r.productID,
		Quantity:  r.quantity,
		Position:  r.position,
	}
	if r.rotated {
		p.Rotation = model.Rotation{Z: 90}
	}
	*dst = append(*dst, p)
	r.active = false
	r.quantity = 0
}

// placeItem seats as many remaining units of the item as the pallet and
// the weight budgets allow, and returns how many it placed.
func (b *palletLoad) placeItem(it *workItem, container model.Container, pallet model.PalletTemplate, ceiling float64, loadedWeight *float64) int {
	d := it.product.Dimensions
	palletL, palletW := pallet.Dimensions.Length, pallet.Dimensions.Width
	unitWeight := it.product.Weight

	placed := 0
	run := placementRun{}

	for it.remaining > 0 {
		next, pos, rotated, ok := b.cursor.seat(palletL, palletW, ceiling, d.Width, d.Length, d.Height)
		if !ok {
			break
		}

		// Pallet goods capacity excludes tare; container capacity counts
		// every opened pallet's tare plus all goods.
		candGoods := b.goodsWeight + unitWeight
		if pallet.HasWeightLimit() && candGoods > pallet.MaxWeight {
			break
		}
		tare := 0.0
		if !b.opened {
			tare = pallet.Weight
		}
		candLoaded := *loadedWeight + tare + unitWeight
		if container.HasWeightLimit() && candLoaded > container.MaxWeight {
			break
		}

		b.cursor = next
		b.opened = true
		b.goodsWeight = candGoods
		*loadedWeight = candLoaded
		b.placedVolume += it.volume
		it.remaining--
		placed++

		if run.active && run.rotated == rotated && run.position.Y == pos.Y && run.position.Z == pos.Z {
			run.quantity++
			continue
		}
		run.flush(&b.placements)
		run = placementRun{
			productID: it.product.ID,
			quantity:  1,
			position:  pos,
			rotated:   rotated,
			active:    true,
		}
	}

	run.flush(&b.placements)
	return placed
}

// finish converts the accumulated load into a pallet arrangement. The
// usable volume is the pallet footprint times the stack height assigned to
// it under the container ceiling.
func (b *palletLoad) finish(pallet model.PalletTemplate, ceiling float64) model.PalletArrangement {
	utilization := 0.0
	if usable := pallet.Dimensions.FootprintArea() * ceiling; usable > 0 {
		utilization = clampPercent(b.placedVolume / usable * 100)
	}
	return model.PalletArrangement{
		Pallet:      pallet,
		Placements:  b.placements,
		TotalWeight: pallet.Weight + b.goodsWeight,
		Utilization: utilization,
	}
}

// placeAll runs the shelf heuristic across every pallet slot the container
// height allows. Items must already be normalized, validated, checked for
// oversize, and sorted.
func placeAll(items []workItem, container model.Container, pallet model.PalletTemplate, ceiling float64) placementOutcome {
	slots := int((container.Dimensions.Height + dimensionEpsilon) / pallet.Dimensions.Height)

	totalRemaining := 0
	for i := range items {
		totalRemaining += items[i].remaining
	}

	out := placementOutcome{
		arrangements: []model.PalletArrangement{},
		remaining:    []model.ProductRequest{},
	}

	for slot := 0; slot < slots && totalRemaining > 0; slot++ {
		load := palletLoad{placements: []model.Placement{}}
		for i := range items {
			if items[i].remaining == 0 {
				continue
			}
			totalRemaining -= load.placeItem(&items[i], container, pallet, ceiling, &out.loadedWeight)
		}
		if len(load.placements) == 0 {
			// A fresh pallet accepted nothing; further slots cannot do better
			break
		}
		out.placedVolume += load.placedVolume
		out.arrangements = append(out.arrangements, load.finish(pallet, ceiling))
	}

	for i := range items {
		if items[i].remaining > 0 {
			out.remaining = append(out.remaining, model.ProductRequest{
				Product:  items[i].original,
				Quantity: items[i].remaining,
			})
		}
	}

	return out
}
