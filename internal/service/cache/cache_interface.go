package cache

import "github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"

// Cache defines the interface for optimization result caching. Keys are
// structural hashes of normalized optimization inputs.
type Cache interface {
	Get(key uint64) (model.OptimizationResult, bool)
	Set(key uint64, value model.OptimizationResult)
	Invalidate(key uint64)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
