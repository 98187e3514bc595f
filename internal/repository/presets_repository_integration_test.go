//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/circuitbreaker"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
)

func containerPresetFixture(name string, length float64) model.ContainerPreset {
	return model.ContainerPreset{
		Name: name,
		Container: model.Container{
			Dimensions: model.Dimensions{Length: length, Width: 235.2, Height: 239.5, Unit: model.UnitCentimeters},
			MaxWeight:  28200,
		},
	}
}

func TestPresetsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewPresetsRepository(db)

	t.Run("no active set initially", func(t *testing.T) {
		config, err := repo.GetActive(ctx, PresetKindContainers)
		require.NoError(t, err)
		assert.Nil(t, config)
	})

	t.Run("replace installs active set", func(t *testing.T) {
		presets := []model.ContainerPreset{containerPresetFixture("20ft Standard", 589.8)}

		config, err := repo.ReplaceContainers(ctx, presets)
		require.NoError(t, err)
		assert.True(t, config.Active)
		assert.Equal(t, 1, config.Version)
		assert.Len(t, config.Containers, 1)

		active, err := repo.GetActive(ctx, PresetKindContainers)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, config.ID, active.ID)
	})

	t.Run("replace deactivates previous set", func(t *testing.T) {
		presets := []model.ContainerPreset{containerPresetFixture("40ft Standard", 1203.2)}

		config, err := repo.ReplaceContainers(ctx, presets)
		require.NoError(t, err)
		assert.Equal(t, 2, config.Version)

		active, err := repo.GetActive(ctx, PresetKindContainers)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, "40ft Standard", active.Containers[0].Name)

		history, err := repo.List(ctx, PresetKindContainers, 10)
		require.NoError(t, err)
		assert.Len(t, history, 2)

		activeCount := 0
		for _, c := range history {
			if c.Active {
				activeCount++
			}
		}
		assert.Equal(t, 1, activeCount)
	})

	t.Run("kinds are independent", func(t *testing.T) {
		pallets := []model.PalletPreset{
			{
				Name: "EUR-1",
				Pallet: model.PalletTemplate{
					Dimensions: model.Dimensions{Length: 120, Width: 80, Height: 14.4, Unit: model.UnitCentimeters},
					Weight:     25,
					MaxWeight:  1500,
				},
			},
		}

		_, err := repo.ReplacePallets(ctx, pallets)
		require.NoError(t, err)

		containerSet, err := repo.GetActive(ctx, PresetKindContainers)
		require.NoError(t, err)
		require.NotNil(t, containerSet)
		assert.Equal(t, "40ft Standard", containerSet.Containers[0].Name)

		palletSet, err := repo.GetActive(ctx, PresetKindPallets)
		require.NoError(t, err)
		require.NotNil(t, palletSet)
		assert.Equal(t, 1, palletSet.Version)
		assert.Equal(t, "EUR-1", palletSet.Pallets[0].Name)
	})

	t.Run("list honors limit", func(t *testing.T) {
		history, err := repo.List(ctx, PresetKindContainers, 1)
		require.NoError(t, err)
		assert.Len(t, history, 1)
		assert.True(t, history[0].Active)
	})
}

func TestPresetsRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewPresetsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewPresetsRepositoryWithCircuitBreaker(repo, cb)

	t.Run("circuit breaker allows successful operations", func(t *testing.T) {
		presets := []model.ContainerPreset{containerPresetFixture("20ft Standard", 589.8)}

		config, err := wrappedRepo.ReplaceContainers(ctx, presets)
		require.NoError(t, err)
		assert.NotNil(t, config)

		active, err := wrappedRepo.GetActive(ctx, PresetKindContainers)
		require.NoError(t, err)
		assert.NotNil(t, active)
	})

	t.Run("circuit breaker stats", func(t *testing.T) {
		stats := cb.GetStats()
		assert.Equal(t, "closed", stats.State)
		assert.True(t, stats.IsHealthy)
	})
}
