// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/repository"
)

type MockProductsRepositoryInterface struct {
	mock.Mock
}

func (m *MockProductsRepositoryInterface) Create(ctx context.Context, product *repository.ProductDocument) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductsRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*repository.ProductDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ProductDocument), args.Error(1)
}

func (m *MockProductsRepositoryInterface) FindBySKU(ctx context.Context, sku string) (*repository.ProductDocument, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ProductDocument), args.Error(1)
}

func (m *MockProductsRepositoryInterface) Update(ctx context.Context, product *repository.ProductDocument) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductsRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductsRepositoryInterface) List(ctx context.Context, filter bson.M, limit, skip int64) ([]*repository.ProductDocument, error) {
	args := m.Called(ctx, filter, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.ProductDocument), args.Error(1)
}
