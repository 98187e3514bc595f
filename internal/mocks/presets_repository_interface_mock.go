// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/repository"
)

type MockPresetsRepositoryInterface struct {
	mock.Mock
}

func (m *MockPresetsRepositoryInterface) GetActive(ctx context.Context, kind string) (*repository.PresetConfig, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PresetConfig), args.Error(1)
}

func (m *MockPresetsRepositoryInterface) ReplaceContainers(ctx context.Context, presets []model.ContainerPreset) (*repository.PresetConfig, error) {
	args := m.Called(ctx, presets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PresetConfig), args.Error(1)
}

func (m *MockPresetsRepositoryInterface) ReplacePallets(ctx context.Context, presets []model.PalletPreset) (*repository.PresetConfig, error) {
	args := m.Called(ctx, presets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PresetConfig), args.Error(1)
}

func (m *MockPresetsRepositoryInterface) List(ctx context.Context, kind string, limit int) ([]repository.PresetConfig, error) {
	args := m.Called(ctx, kind, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.PresetConfig), args.Error(1)
}
