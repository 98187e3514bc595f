//go:build integration

package service

import (
	"testing"
	"time"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

// TestOptimizerService_OptimizeIntegration tests memoization against the
// real cache implementation rather than a mock.
func TestOptimizerService_OptimizeIntegration(t *testing.T) {
	svc := NewOptimizerService(WithCache(100, 5*time.Minute))

	requests := []model.ProductRequest{boxRequest("box-10", 10, 1, 10)}

	result1 := svc.Optimize(requests, testContainer(), testPallet())
	result2 := svc.Optimize(requests, testContainer(), testPallet()) // Should use cache

	assert.Equal(t, result1, result2)
	assert.True(t, result1.Success)
	assert.Equal(t, 10, result1.PlacedQuantity("box-10"))
}

// TestOptimizerService_ShardedCacheIntegration tests the sharded cache
// behind the optimizer under concurrent load.
func TestOptimizerService_ShardedCacheIntegration(t *testing.T) {
	sharded := NewShardedCache(1024, 5*time.Minute, 16)
	defer sharded.Stop()

	svc := NewOptimizerService(WithCacheInterface(sharded))

	done := make(chan bool)
	for i := 0; i < 8; i++ {
		go func(n int) {
			for q := 1; q <= 20; q++ {
				requests := []model.ProductRequest{boxRequest("box-10", 10, 1, q)}
				result := svc.Optimize(requests, testContainer(), testPallet())
				assert.True(t, result.Success)
				assert.Equal(t, q, result.TotalPlaced())
			}
			done <- true
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	metrics := sharded.Metrics()
	assert.Greater(t, metrics.Hits, int64(0))
}
