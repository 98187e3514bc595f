// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/repository"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) CreateProduct(ctx context.Context, product model.Product) (*repository.ProductDocument, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ProductDocument), args.Error(1)
}

func (m *MockCatalogService) GetProduct(ctx context.Context, id primitive.ObjectID) (*repository.ProductDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ProductDocument), args.Error(1)
}

func (m *MockCatalogService) UpdateProduct(ctx context.Context, id primitive.ObjectID, product model.Product) (*repository.ProductDocument, error) {
	args := m.Called(ctx, id, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ProductDocument), args.Error(1)
}

func (m *MockCatalogService) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) ListProducts(ctx context.Context, limit, skip int64, includeRetired bool) ([]*repository.ProductDocument, error) {
	args := m.Called(ctx, limit, skip, includeRetired)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.ProductDocument), args.Error(1)
}

func (m *MockCatalogService) ResolveRequests(ctx context.Context, requests []model.ProductRequest) ([]model.ProductRequest, error) {
	args := m.Called(ctx, requests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductRequest), args.Error(1)
}
