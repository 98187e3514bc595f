// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
)

type MockQuotesService struct {
	mock.Mock
}

func (m *MockQuotesService) CreateQuote(ctx context.Context, requests []model.ProductRequest, container model.Container, pallet model.PalletTemplate, note string) (*model.Quote, *model.OptimizationResult, error) {
	args := m.Called(ctx, requests, container, pallet, note)
	var quote *model.Quote
	if args.Get(0) != nil {
		quote = args.Get(0).(*model.Quote)
	}
	var result *model.OptimizationResult
	if args.Get(1) != nil {
		result = args.Get(1).(*model.OptimizationResult)
	}
	return quote, result, args.Error(2)
}

func (m *MockQuotesService) GetQuote(ctx context.Context, reference string) (*model.Quote, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Quote), args.Error(1)
}

func (m *MockQuotesService) ListQuotes(ctx context.Context, limit, skip int64) ([]*model.Quote, error) {
	args := m.Called(ctx, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Quote), args.Error(1)
}
