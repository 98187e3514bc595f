package service

import (
	"time"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/service/cache"
)

// Optimizer defines the interface for packing optimization operations.
// All three operations are pure: plain data in, plain data out, no I/O,
// and the caller's inputs are never mutated.
type Optimizer interface {
	// ValidateProducts checks the request list and names the invalid entries.
	ValidateProducts(requests []model.ProductRequest) model.ValidationReport
	// Optimize places product units onto pallets and pallets into the
	// container, reporting arrangements, remainders, and utilization.
	Optimize(requests []model.ProductRequest, container model.Container, pallet model.PalletTemplate) model.OptimizationResult
	// PrepareSummary projects a result into its condensed summary view.
	PrepareSummary(result model.OptimizationResult) model.OptimizationSummary
	// InvalidateCache clears the memoized results (useful when presets change)
	InvalidateCache()
}

// Option configures an OptimizerService.
type Option func(*OptimizerService)

// OptimizerService implements Optimizer with a deterministic shelf-packing
// heuristic. Repeated calls with structurally equal inputs are served from
// the memoization cache when one is configured.
type OptimizerService struct {
	successMessage string
	cache          cache.Cache
}

// NewOptimizerService creates a new OptimizerService with the given options.
func NewOptimizerService(opts ...Option) *OptimizerService {
	s := &OptimizerService{
		successMessage: DefaultSuccessMessage,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithCache enables result caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *OptimizerService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *OptimizerService) {
		s.cache = c
	}
}

// WithSuccessMessage overrides the message reported on successful results.
func WithSuccessMessage(message string) Option {
	return func(s *OptimizerService) {
		if message != "" {
			s.successMessage = message
		}
	}
}

// Optimize runs the full pipeline: pre-checks, validation, normalization,
// placement, utilization, assembly. Zero-quantity requests are ignored.
// Every input failure comes back as Success=false with a descriptive
// message; partial placement comes back as Success=true with a non-empty
// remainder.
func (s *OptimizerService) Optimize(requests []model.ProductRequest, container model.Container, pallet model.PalletTemplate) model.OptimizationResult {
	active := make([]model.ProductRequest, 0, len(requests))
	for _, r := range requests {
		if r.Quantity != 0 {
			active = append(active, r)
		}
	}
	if len(active) == 0 {
		return model.Failed(MessageNoProducts)
	}

	if report := s.ValidateProducts(active); !report.Valid {
		return model.Failed(invalidProductsMessage(report.InvalidProducts))
	}

	normContainer := normalizeContainer(container)
	normPallet := normalizePallet(pallet)
	if !containerValid(normContainer) {
		return model.Failed(MessageInvalidContainer)
	}
	if !palletValid(normPallet) {
		return model.Failed(MessageInvalidPallet)
	}

	var key uint64
	if s.cache != nil {
		key = resultCacheKey(active, normContainer, normPallet)
		if result, ok := s.cache.Get(key); ok {
			return result
		}
	}

	result := s.optimizeCore(active, normContainer, normPallet)

	if s.cache != nil {
		s.cache.Set(key, result)
	}

	return result
}

// optimizeCore is the uncached pipeline over validated, normalized inputs.
func (s *OptimizerService) optimizeCore(requests []model.ProductRequest, container model.Container, pallet model.PalletTemplate) model.OptimizationResult {
	if !palletFitsContainer(pallet, container) {
		return model.Failed(MessagePalletTooLarge)
	}

	state := getPlacementState(len(requests))
	defer putPlacementState(state)

	items := state.items
	for _, r := range requests {
		normProduct := normalizeProduct(r.Product)
		items = append(items, workItem{
			original:  r.Product,
			product:   normProduct,
			requested: r.Quantity,
			remaining: r.Quantity,
			volume:    normProduct.Dimensions.Volume(),
		})
	}

	// A pallet layer occupies its own height; what remains below the
	// container ceiling is the goods stack for that pallet.
	ceiling := container.Dimensions.Height - pallet.Dimensions.Height

	if oversized := oversizedItems(items, container, pallet, ceiling); len(oversized) > 0 {
		return model.Failed(oversizeMessage(oversized))
	}

	sortItems(items)

	return s.assembleResult(placeAll(items, container, pallet, ceiling), container)
}

// InvalidateCache clears the memoization cache.
func (s *OptimizerService) InvalidateCache() {
	if s.cache != nil {
		if cacheWithClear, ok := s.cache.(interface{ Clear() }); ok {
			cacheWithClear.Clear()
		}
	}
}
