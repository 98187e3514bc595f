package service

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"
	"math"
	"sort"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
)

// quantize folds a canonical-unit value to micrometer precision so inputs
// that are physically equal after unit conversion hash identically.
func quantize(v float64) int64 {
	return int64(math.Round(v * 1e6))
}

func hashInt(h hash.Hash, v int64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	h.Write(buf[:])
}

func hashString(h hash.Hash, s string) {
	hashInt(h, int64(len(s)))
	h.Write([]byte(s))
}

func hashDimensions(h hash.Hash, d model.Dimensions) {
	hashInt(h, quantize(d.Length))
	hashInt(h, quantize(d.Width))
	hashInt(h, quantize(d.Height))
}

// requestLess imposes the canonical request order used for hashing, so the
// key never depends on how the caller arranged the request list.
func requestLess(a, b model.ProductRequest) bool {
	if a.Product.ID != b.Product.ID {
		return a.Product.ID < b.Product.ID
	}
	if a.Product.SKU != b.Product.SKU {
		return a.Product.SKU < b.Product.SKU
	}
	if a.Product.Name != b.Product.Name {
		return a.Product.Name < b.Product.Name
	}
	da, db := a.Product.Dimensions, b.Product.Dimensions
	if qa, qb := quantize(da.Volume()), quantize(db.Volume()); qa != qb {
		return qa < qb
	}
	if qa, qb := quantize(a.Product.Weight), quantize(b.Product.Weight); qa != qb {
		return qa < qb
	}
	return a.Quantity < b.Quantity
}

// resultCacheKey produces the structural hash of the normalized inputs:
// SHA-256 over a canonical encoding, folded to 64 bits. The container and
// pallet must already be normalized; the requests are normalized and
// canonically sorted here without touching the caller's slice.
func resultCacheKey(requests []model.ProductRequest, container model.Container, pallet model.PalletTemplate) uint64 {
	normalized := make([]model.ProductRequest, len(requests))
	for i, r := range requests {
		normalized[i] = model.ProductRequest{
			Product:  normalizeProduct(r.Product),
			Quantity: r.Quantity,
		}
	}
	sort.SliceStable(normalized, func(i, j int) bool {
		return requestLess(normalized[i], normalized[j])
	})

	h := sha256.New()
	hashDimensions(h, container.Dimensions)
	hashInt(h, quantize(container.MaxWeight))
	hashDimensions(h, pallet.Dimensions)
	hashInt(h, quantize(pallet.Weight))
	hashInt(h, quantize(pallet.MaxWeight))
	for _, r := range normalized {
		hashString(h, r.Product.ID)
		hashString(h, r.Product.SKU)
		hashString(h, r.Product.Name)
		hashDimensions(h, r.Product.Dimensions)
		hashInt(h, quantize(r.Product.Weight))
		hashInt(h, int64(r.Quantity))
	}

	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8])
}
