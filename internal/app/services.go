// Package app provides service initialization.
package app

import (
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/config"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/service"
)

// ServiceComponents holds engine-level components.
type ServiceComponents struct {
	Optimizer service.Optimizer
	// ResultCache is set when caching is enabled so the owner can stop its
	// janitor goroutines on shutdown.
	ResultCache *service.ShardedCache
}

// InitializeServices initializes the optimization engine.
func InitializeServices(cacheCfg config.CacheConfig, engineCfg config.EngineConfig) *ServiceComponents {
	var opts []service.Option
	components := &ServiceComponents{}

	if cacheCfg.Size > 0 {
		components.ResultCache = service.NewShardedCache(cacheCfg.Size, cacheCfg.TTL, cacheCfg.Shards)
		opts = append(opts, service.WithCacheInterface(components.ResultCache))
	}

	if engineCfg.SuccessMessage != "" {
		opts = append(opts, service.WithSuccessMessage(engineCfg.SuccessMessage))
	}

	components.Optimizer = service.NewOptimizerService(opts...)

	return components
}
