package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/circuitbreaker"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// defaultPresetsCacheTTL bounds staleness of the active preset sets served
// from memory between database reads.
const defaultPresetsCacheTTL = 30 * time.Second

// PresetsService provides container and pallet preset operations.
type PresetsService interface {
	// GetContainers returns the active container presets, falling back to the
	// compiled-in defaults when no database is configured, no set is active,
	// or the circuit breaker is rejecting reads.
	GetContainers(ctx context.Context) ([]model.ContainerPreset, error)
	// GetPallets returns the active pallet presets with the same fallback.
	GetPallets(ctx context.Context) ([]model.PalletPreset, error)
	// ResolveContainer looks up an active container preset by name.
	ResolveContainer(ctx context.Context, name string) (*model.Container, error)
	// ResolvePallet looks up an active pallet preset by name.
	ResolvePallet(ctx context.Context, name string) (*model.PalletTemplate, error)
	// ReplaceContainers installs a new active container preset set.
	ReplaceContainers(ctx context.Context, presets []model.ContainerPreset) (*repository.PresetConfig, error)
	// ReplacePallets installs a new active pallet preset set.
	ReplacePallets(ctx context.Context, presets []model.PalletPreset) (*repository.PresetConfig, error)
	// History returns stored preset set versions of a kind, newest first.
	History(ctx context.Context, kind string, limit int) ([]repository.PresetConfig, error)
}

// PresetsServiceImpl implements PresetsService.
type PresetsServiceImpl struct {
	presetsRepo repository.PresetsRepositoryInterface
	cacheTTL    time.Duration

	mu               sync.RWMutex
	containers       []model.ContainerPreset
	containersExpiry time.Time
	pallets          []model.PalletPreset
	palletsExpiry    time.Time
}

// NewPresetsService creates a new presets service. A nil repository puts the
// service in defaults-only mode: reads serve the compiled-in presets and
// writes return ErrRepositoryNotConfigured.
func NewPresetsService(presetsRepo repository.PresetsRepositoryInterface) PresetsService {
	return &PresetsServiceImpl{
		presetsRepo: presetsRepo,
		cacheTTL:    defaultPresetsCacheTTL,
	}
}

func (s *PresetsServiceImpl) GetContainers(ctx context.Context) ([]model.ContainerPreset, error) {
	s.mu.RLock()
	if s.containers != nil && time.Now().Before(s.containersExpiry) {
		presets := s.containers
		s.mu.RUnlock()
		return presets, nil
	}
	s.mu.RUnlock()

	if s.presetsRepo == nil {
		return DefaultContainerPresets(), nil
	}

	config, err := s.presetsRepo.GetActive(ctx, repository.PresetKindContainers)
	if err != nil {
		// Keep serving the defaults while the breaker shields the database;
		// the failed read is not cached.
		if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
			return DefaultContainerPresets(), nil
		}
		return nil, err
	}

	presets := DefaultContainerPresets()
	if config != nil && len(config.Containers) > 0 {
		presets = config.Containers
	}

	s.mu.Lock()
	s.containers = presets
	s.containersExpiry = time.Now().Add(s.cacheTTL)
	s.mu.Unlock()

	return presets, nil
}

func (s *PresetsServiceImpl) GetPallets(ctx context.Context) ([]model.PalletPreset, error) {
	s.mu.RLock()
	if s.pallets != nil && time.Now().Before(s.palletsExpiry) {
		presets := s.pallets
		s.mu.RUnlock()
		return presets, nil
	}
	s.mu.RUnlock()

	if s.presetsRepo == nil {
		return DefaultPalletPresets(), nil
	}

	config, err := s.presetsRepo.GetActive(ctx, repository.PresetKindPallets)
	if err != nil {
		if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
			return DefaultPalletPresets(), nil
		}
		return nil, err
	}

	presets := DefaultPalletPresets()
	if config != nil && len(config.Pallets) > 0 {
		presets = config.Pallets
	}

	s.mu.Lock()
	s.pallets = presets
	s.palletsExpiry = time.Now().Add(s.cacheTTL)
	s.mu.Unlock()

	return presets, nil
}

// ResolveContainer returns the container spec behind a preset name, or
// (nil, nil) when no active preset carries that name.
func (s *PresetsServiceImpl) ResolveContainer(ctx context.Context, name string) (*model.Container, error) {
	presets, err := s.GetContainers(ctx)
	if err != nil {
		return nil, err
	}
	for _, preset := range presets {
		if preset.Name == name {
			container := preset.Container
			return &container, nil
		}
	}
	return nil, nil
}

// ResolvePallet returns the pallet spec behind a preset name, or (nil, nil)
// when no active preset carries that name.
func (s *PresetsServiceImpl) ResolvePallet(ctx context.Context, name string) (*model.PalletTemplate, error) {
	presets, err := s.GetPallets(ctx)
	if err != nil {
		return nil, err
	}
	for _, preset := range presets {
		if preset.Name == name {
			pallet := preset.Pallet
			return &pallet, nil
		}
	}
	return nil, nil
}

func (s *PresetsServiceImpl) ReplaceContainers(ctx context.Context, presets []model.ContainerPreset) (*repository.PresetConfig, error) {
	if s.presetsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	config, err := s.presetsRepo.ReplaceContainers(ctx, presets)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.containers = nil
	s.mu.Unlock()

	return config, nil
}

func (s *PresetsServiceImpl) ReplacePallets(ctx context.Context, presets []model.PalletPreset) (*repository.PresetConfig, error) {
	if s.presetsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	config, err := s.presetsRepo.ReplacePallets(ctx, presets)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.pallets = nil
	s.mu.Unlock()

	return config, nil
}

func (s *PresetsServiceImpl) History(ctx context.Context, kind string, limit int) ([]repository.PresetConfig, error) {
	if s.presetsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.presetsRepo.List(ctx, kind, limit)
}
