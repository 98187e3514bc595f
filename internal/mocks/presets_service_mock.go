// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/repository"
)

type MockPresetsService struct {
	mock.Mock
}

func (m *MockPresetsService) GetContainers(ctx context.Context) ([]model.ContainerPreset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContainerPreset), args.Error(1)
}

func (m *MockPresetsService) GetPallets(ctx context.Context) ([]model.PalletPreset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PalletPreset), args.Error(1)
}

func (m *MockPresetsService) ResolveContainer(ctx context.Context, name string) (*model.Container, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Container), args.Error(1)
}

func (m *MockPresetsService) ResolvePallet(ctx context.Context, name string) (*model.PalletTemplate, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PalletTemplate), args.Error(1)
}

func (m *MockPresetsService) ReplaceContainers(ctx context.Context, presets []model.ContainerPreset) (*repository.PresetConfig, error) {
	args := m.Called(ctx, presets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PresetConfig), args.Error(1)
}

func (m *MockPresetsService) ReplacePallets(ctx context.Context, presets []model.PalletPreset) (*repository.PresetConfig, error) {
	args := m.Called(ctx, presets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PresetConfig), args.Error(1)
}

func (m *MockPresetsService) History(ctx context.Context, kind string, limit int) ([]repository.PresetConfig, error) {
	args := m.Called(ctx, kind, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.PresetConfig), args.Error(1)
}
