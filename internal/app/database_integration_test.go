//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/config"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database names for each subtest
	uri := getSharedContainerURI()

	databaseConfig := func(dbName string) config.DatabaseConfig {
		return config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		}
	}

	t.Run("initialize with enabled database", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())

		components := InitializeDatabase(databaseConfig(dbName), true)

		require.NotNil(t, components)
		defer components.DB.Close(ctx)
		assert.NotNil(t, components.PresetsRepo)
		assert.NotNil(t, components.ProductsRepo)
		assert.NotNil(t, components.QuotesRepo)
		assert.NotNil(t, components.LoggingService)
		assert.NotNil(t, components.PresetsCircuitBreaker)
		assert.NotNil(t, components.ProductsCircuitBreaker)
		assert.NotNil(t, components.QuotesCircuitBreaker)
		assert.NotNil(t, components.LogsCircuitBreaker)
	})

	t.Run("initialize with disabled database", func(t *testing.T) {
		t.Parallel()
		cfg := config.DatabaseConfig{
			Enabled: false,
		}

		components := InitializeDatabase(cfg, true)
		assert.Nil(t, components)
	})

	t.Run("seeds default presets", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())

		components := InitializeDatabase(databaseConfig(dbName), true)
		require.NotNil(t, components)
		defer components.DB.Close(ctx)

		containers, err := components.PresetsRepo.GetActive(ctx, repository.PresetKindContainers)
		require.NoError(t, err)
		require.NotNil(t, containers)
		require.Len(t, containers.Containers, 3)
		assert.Equal(t, "20ft Standard", containers.Containers[0].Name)

		pallets, err := components.PresetsRepo.GetActive(ctx, repository.PresetKindPallets)
		require.NoError(t, err)
		require.NotNil(t, pallets)
		require.Len(t, pallets.Pallets, 3)
		assert.Equal(t, "EUR-1", pallets.Pallets[0].Name)
	})

	t.Run("seeding disabled leaves presets empty", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())

		components := InitializeDatabase(databaseConfig(dbName), false)
		require.NotNil(t, components)
		defer components.DB.Close(ctx)

		active, err := components.PresetsRepo.GetActive(ctx, repository.PresetKindContainers)
		require.NoError(t, err)
		assert.Nil(t, active)
	})

	t.Run("seeding is idempotent", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())

		first := InitializeDatabase(databaseConfig(dbName), true)
		require.NotNil(t, first)
		defer first.DB.Close(ctx)

		second := InitializeDatabase(databaseConfig(dbName), true)
		require.NotNil(t, second)
		defer second.DB.Close(ctx)

		active, err := second.PresetsRepo.GetActive(ctx, repository.PresetKindContainers)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, 1, active.Version)
	})

	t.Run("circuit breaker integration", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := databaseConfig(dbName)
		cfg.CircuitBreakerFailureThreshold = 2
		cfg.CircuitBreakerSuccessThreshold = 1
		cfg.CircuitBreakerTimeout = 100 * time.Millisecond

		components := InitializeDatabase(cfg, true)
		require.NotNil(t, components)
		defer components.DB.Close(ctx)

		stats := components.PresetsCircuitBreaker.GetStats()
		assert.Equal(t, "closed", stats.State)
		assert.True(t, stats.IsHealthy)

		logsStats := components.LogsCircuitBreaker.GetStats()
		assert.Equal(t, "closed", logsStats.State)
		assert.True(t, logsStats.IsHealthy)
	})

	t.Run("applies pool sizes from config", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := databaseConfig(dbName)
		cfg.MaxPoolSize = 20
		cfg.MinPoolSize = 2

		components := InitializeDatabase(cfg, false)
		require.NotNil(t, components)
		defer components.DB.Close(ctx)

		require.NoError(t, components.DB.HealthCheck(ctx))
	})
}
