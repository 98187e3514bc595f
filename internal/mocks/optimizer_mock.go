// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
)

type MockOptimizer struct {
	mock.Mock
}

func (m *MockOptimizer) ValidateProducts(requests []model.ProductRequest) model.ValidationReport {
	args := m.Called(requests)
	return args.Get(0).(model.ValidationReport)
}

func (m *MockOptimizer) Optimize(requests []model.ProductRequest, container model.Container, pallet model.PalletTemplate) model.OptimizationResult {
	args := m.Called(requests, container, pallet)
	return args.Get(0).(model.OptimizationResult)
}

func (m *MockOptimizer) PrepareSummary(result model.OptimizationResult) model.OptimizationSummary {
	args := m.Called(result)
	return args.Get(0).(model.OptimizationSummary)
}

func (m *MockOptimizer) InvalidateCache() {
	m.Called()
}
