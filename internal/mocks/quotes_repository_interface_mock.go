// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
)

type MockQuotesRepositoryInterface struct {
	mock.Mock
}

func (m *MockQuotesRepositoryInterface) Create(ctx context.Context, quote *model.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuotesRepositoryInterface) FindByReference(ctx context.Context, reference string) (*model.Quote, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Quote), args.Error(1)
}

func (m *MockQuotesRepositoryInterface) List(ctx context.Context, limit, skip int64) ([]*model.Quote, error) {
	args := m.Called(ctx, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Quote), args.Error(1)
}
