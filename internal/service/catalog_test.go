package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/mocks"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/repository"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/service"
)

func duplicateKeyError() error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: "E11000 duplicate key error"},
		},
	}
}

func TestCatalogService_CreateProduct(t *testing.T) {
	product := model.Product{
		Name:       "Olive oil case",
		SKU:        "OO-12x1L",
		Dimensions: model.Dimensions{Length: 30, Width: 24, Height: 32, Unit: model.UnitCentimeters},
		Weight:     9.6,
	}

	tests := []struct {
		name          string
		setupMock     func(*mocks.MockProductsRepositoryInterface)
		expectedError error
	}{
		{
			name: "successful create",
			setupMock: func(m *mocks.MockProductsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.ProductDocument) bool {
					return doc.Name == "Olive oil case" && doc.SKU == "OO-12x1L"
				})).Return(nil)
			},
		},
		{
			name: "duplicate sku",
			setupMock: func(m *mocks.MockProductsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.Anything).Return(duplicateKeyError())
			},
			expectedError: service.ErrDuplicateSKU,
		},
		{
			name: "repository error",
			setupMock: func(m *mocks.MockProductsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.Anything).Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockProductsRepositoryInterface)
			tt.setupMock(mockRepo)

			svc := service.NewCatalogService(mockRepo)
			doc, err := svc.CreateProduct(context.Background(), product)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, doc)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, doc)
				assert.Equal(t, product.Name, doc.Name)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_CreateProduct_NilRepository(t *testing.T) {
	svc := service.NewCatalogService(nil)
	doc, err := svc.CreateProduct(context.Background(), model.Product{Name: "x"})

	assert.Error(t, err)
	assert.Equal(t, service.ErrRepositoryNotConfigured, err)
	assert.Nil(t, doc)
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	id := primitive.NewObjectID()
	existing := &repository.ProductDocument{
		ID:         id,
		Name:       "Olive oil case",
		SKU:        "OO-12x1L",
		Dimensions: model.Dimensions{Length: 30, Width: 24, Height: 32, Unit: model.UnitCentimeters},
		Weight:     9.6,
		Active:     true,
	}
	update := model.Product{
		Name:       "Olive oil case (new label)",
		SKU:        "OO-12x1L",
		Dimensions: model.Dimensions{Length: 30, Width: 24, Height: 33, Unit: model.UnitCentimeters},
		Weight:     9.8,
	}

	t.Run("successful update", func(t *testing.T) {
		mockRepo := new(mocks.MockProductsRepositoryInterface)
		mockRepo.On("FindByID", mock.Anything, id).Return(existing, nil)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(doc *repository.ProductDocument) bool {
			return doc.ID == id && doc.Weight == 9.8
		})).Return(nil)

		svc := service.NewCatalogService(mockRepo)
		doc, err := svc.UpdateProduct(context.Background(), id, update)

		assert.NoError(t, err)
		assert.NotNil(t, doc)
		assert.Equal(t, update.Name, doc.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(mocks.MockProductsRepositoryInterface)
		mockRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

		svc := service.NewCatalogService(mockRepo)
		doc, err := svc.UpdateProduct(context.Background(), id, update)

		assert.NoError(t, err)
		assert.Nil(t, doc)
		mockRepo.AssertExpectations(t)
	})
}

func TestCatalogService_ListProducts(t *testing.T) {
	t.Run("active only by default", func(t *testing.T) {
		mockRepo := new(mocks.MockProductsRepositoryInterface)
		docs := []*repository.ProductDocument{
			{ID: primitive.NewObjectID(), Name: "A", Active: true},
		}
		mockRepo.On("List", mock.Anything, bson.M{"active": true}, int64(20), int64(0)).Return(docs, nil)

		svc := service.NewCatalogService(mockRepo)
		products, err := svc.ListProducts(context.Background(), 20, 0, false)

		assert.NoError(t, err)
		assert.Len(t, products, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("include retired", func(t *testing.T) {
		mockRepo := new(mocks.MockProductsRepositoryInterface)
		mockRepo.On("List", mock.Anything, bson.M{}, int64(20), int64(0)).Return([]*repository.ProductDocument{}, nil)

		svc := service.NewCatalogService(mockRepo)
		products, err := svc.ListProducts(context.Background(), 20, 0, true)

		assert.NoError(t, err)
		assert.Empty(t, products)
		mockRepo.AssertExpectations(t)
	})
}

func TestCatalogService_ResolveRequests(t *testing.T) {
	catalogID := primitive.NewObjectID()
	stored := &repository.ProductDocument{
		ID:         catalogID,
		Name:       "Stored pallet wrap",
		SKU:        "WRAP-500",
		Dimensions: model.Dimensions{Length: 25, Width: 25, Height: 30, Unit: model.UnitCentimeters},
		Weight:     4.2,
		Active:     true,
	}
	inline := model.ProductRequest{
		Product: model.Product{
			Name:       "Inline box",
			Dimensions: model.Dimensions{Length: 10, Width: 10, Height: 10, Unit: model.UnitCentimeters},
			Weight:     1,
		},
		Quantity: 5,
	}

	t.Run("inline requests pass through", func(t *testing.T) {
		mockRepo := new(mocks.MockProductsRepositoryInterface)
		svc := service.NewCatalogService(mockRepo)

		resolved, err := svc.ResolveRequests(context.Background(), []model.ProductRequest{inline})

		assert.NoError(t, err)
		assert.Equal(t, []model.ProductRequest{inline}, resolved)
		mockRepo.AssertNotCalled(t, "FindByID")
		mockRepo.AssertNotCalled(t, "FindBySKU")
	})

	t.Run("resolves by id", func(t *testing.T) {
		mockRepo := new(mocks.MockProductsRepositoryInterface)
		mockRepo.On("FindByID", mock.Anything, catalogID).Return(stored, nil)

		svc := service.NewCatalogService(mockRepo)
		requests := []model.ProductRequest{
			{Product: model.Product{ID: catalogID.Hex()}, Quantity: 3},
		}

		resolved, err := svc.ResolveRequests(context.Background(), requests)

		assert.NoError(t, err)
		assert.Equal(t, "Stored pallet wrap", resolved[0].Product.Name)
		assert.Equal(t, 3, resolved[0].Quantity)
		assert.InDelta(t, 4.2, resolved[0].Product.Weight, 0.001)
		mockRepo.AssertExpectations(t)
	})

	t.Run("resolves by sku", func(t *testing.T) {
		mockRepo := new(mocks.MockProductsRepositoryInterface)
		mockRepo.On("FindBySKU", mock.Anything, "WRAP-500").Return(stored, nil)

		svc := service.NewCatalogService(mockRepo)
		requests := []model.ProductRequest{
			{Product: model.Product{SKU: "WRAP-500"}, Quantity: 2},
		}

		resolved, err := svc.ResolveRequests(context.Background(), requests)

		assert.NoError(t, err)
		assert.Equal(t, catalogID.Hex(), resolved[0].Product.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown reference", func(t *testing.T) {
		mockRepo := new(mocks.MockProductsRepositoryInterface)
		mockRepo.On("FindBySKU", mock.Anything, "GHOST").Return(nil, nil)

		svc := service.NewCatalogService(mockRepo)
		requests := []model.ProductRequest{
			{Product: model.Product{SKU: "GHOST"}, Quantity: 1},
		}

		resolved, err := svc.ResolveRequests(context.Background(), requests)

		assert.Error(t, err)
		assert.ErrorIs(t, err, service.ErrUnknownProduct)
		assert.Nil(t, resolved)
		mockRepo.AssertExpectations(t)
	})

	t.Run("malformed id", func(t *testing.T) {
		mockRepo := new(mocks.MockProductsRepositoryInterface)
		svc := service.NewCatalogService(mockRepo)
		requests := []model.ProductRequest{
			{Product: model.Product{ID: "not-a-hex-id"}, Quantity: 1},
		}

		_, err := svc.ResolveRequests(context.Background(), requests)

		assert.ErrorIs(t, err, service.ErrUnknownProduct)
	})

	t.Run("reference without repository", func(t *testing.T) {
		svc := service.NewCatalogService(nil)
		requests := []model.ProductRequest{
			{Product: model.Product{SKU: "WRAP-500"}, Quantity: 1},
		}

		_, err := svc.ResolveRequests(context.Background(), requests)

		assert.Equal(t, service.ErrRepositoryNotConfigured, err)
	})

	t.Run("inline without repository", func(t *testing.T) {
		svc := service.NewCatalogService(nil)

		resolved, err := svc.ResolveRequests(context.Background(), []model.ProductRequest{inline})

		assert.NoError(t, err)
		assert.Len(t, resolved, 1)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		mockRepo := new(mocks.MockProductsRepositoryInterface)
		mockRepo.On("FindByID", mock.Anything, catalogID).Return(stored, nil)

		svc := service.NewCatalogService(mockRepo)
		requests := []model.ProductRequest{
			{Product: model.Product{ID: catalogID.Hex()}, Quantity: 3},
		}

		_, err := svc.ResolveRequests(context.Background(), requests)

		assert.NoError(t, err)
		assert.Empty(t, requests[0].Product.Name)
	})
}
