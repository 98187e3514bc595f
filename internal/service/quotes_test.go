package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/mocks"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/service"
)

var quoteReferencePattern = regexp.MustCompile(`^Q-[0-9A-F]{8}$`)

func quoteFixture() ([]model.ProductRequest, model.Container, model.PalletTemplate) {
	requests := []model.ProductRequest{
		{
			Product: model.Product{
				Name:       "Boxed fans",
				Dimensions: model.Dimensions{Length: 40, Width: 40, Height: 30, Unit: model.UnitCentimeters},
				Weight:     3.5,
			},
			Quantity: 12,
		},
	}
	container := model.Container{
		Dimensions: model.Dimensions{Length: 589.8, Width: 235.2, Height: 239.5, Unit: model.UnitCentimeters},
		MaxWeight:  28200,
	}
	pallet := model.PalletTemplate{
		Dimensions: model.Dimensions{Length: 120, Width: 80, Height: 14.4, Unit: model.UnitCentimeters},
		Weight:     25,
		MaxWeight:  1500,
	}
	return requests, container, pallet
}

func TestQuotesService_CreateQuote(t *testing.T) {
	requests, container, pallet := quoteFixture()

	result := model.OptimizationResult{
		Success:     true,
		Message:     "Optimization completed successfully",
		Utilization: 42.5,
	}
	summary := model.OptimizationSummary{
		Success:      true,
		Utilization:  42.5,
		TotalPallets: 1,
	}

	t.Run("successful create", func(t *testing.T) {
		mockOptimizer := new(mocks.MockOptimizer)
		mockOptimizer.On("Optimize", requests, container, pallet).Return(result)
		mockOptimizer.On("PrepareSummary", result).Return(summary)

		mockRepo := new(mocks.MockQuotesRepositoryInterface)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(q *model.Quote) bool {
			return quoteReferencePattern.MatchString(q.Reference) && q.Summary.TotalPallets == 1
		})).Return(nil)

		svc := service.NewQuotesService(mockRepo, mockOptimizer)
		quote, got, err := svc.CreateQuote(context.Background(), requests, container, pallet, "rush order")

		assert.NoError(t, err)
		assert.NotNil(t, quote)
		assert.NotNil(t, got)
		assert.True(t, got.Success)
		assert.Equal(t, "rush order", quote.Note)
		assert.Regexp(t, quoteReferencePattern, quote.Reference)
		mockOptimizer.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockOptimizer := new(mocks.MockOptimizer)
		mockOptimizer.On("Optimize", requests, container, pallet).Return(result)
		mockOptimizer.On("PrepareSummary", result).Return(summary)

		mockRepo := new(mocks.MockQuotesRepositoryInterface)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("write failed"))

		svc := service.NewQuotesService(mockRepo, mockOptimizer)
		quote, got, err := svc.CreateQuote(context.Background(), requests, container, pallet, "")

		assert.Error(t, err)
		assert.Nil(t, quote)
		assert.Nil(t, got)
	})

	t.Run("nil repository", func(t *testing.T) {
		mockOptimizer := new(mocks.MockOptimizer)
		svc := service.NewQuotesService(nil, mockOptimizer)

		quote, got, err := svc.CreateQuote(context.Background(), requests, container, pallet, "")

		assert.Equal(t, service.ErrRepositoryNotConfigured, err)
		assert.Nil(t, quote)
		assert.Nil(t, got)
		mockOptimizer.AssertNotCalled(t, "Optimize")
	})
}

func TestQuotesService_CreateQuote_UniqueReferences(t *testing.T) {
	requests, container, pallet := quoteFixture()

	mockOptimizer := new(mocks.MockOptimizer)
	mockOptimizer.On("Optimize", mock.Anything, mock.Anything, mock.Anything).Return(model.OptimizationResult{Success: true})
	mockOptimizer.On("PrepareSummary", mock.Anything).Return(model.OptimizationSummary{Success: true})

	mockRepo := new(mocks.MockQuotesRepositoryInterface)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := service.NewQuotesService(mockRepo, mockOptimizer)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		quote, _, err := svc.CreateQuote(context.Background(), requests, container, pallet, "")
		assert.NoError(t, err)
		assert.False(t, seen[quote.Reference], "reference %s repeated", quote.Reference)
		seen[quote.Reference] = true
	}
}

func TestQuotesService_GetQuote(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		stored := &model.Quote{
			ID:        primitive.NewObjectID(),
			Reference: "Q-3F2A9C1B",
			Summary:   model.OptimizationSummary{Success: true},
		}
		mockRepo := new(mocks.MockQuotesRepositoryInterface)
		mockRepo.On("FindByReference", mock.Anything, "Q-3F2A9C1B").Return(stored, nil)

		svc := service.NewQuotesService(mockRepo, new(mocks.MockOptimizer))
		quote, err := svc.GetQuote(context.Background(), "Q-3F2A9C1B")

		assert.NoError(t, err)
		assert.Equal(t, stored, quote)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(mocks.MockQuotesRepositoryInterface)
		mockRepo.On("FindByReference", mock.Anything, "Q-00000000").Return(nil, nil)

		svc := service.NewQuotesService(mockRepo, new(mocks.MockOptimizer))
		quote, err := svc.GetQuote(context.Background(), "Q-00000000")

		assert.NoError(t, err)
		assert.Nil(t, quote)
	})

	t.Run("nil repository", func(t *testing.T) {
		svc := service.NewQuotesService(nil, new(mocks.MockOptimizer))
		quote, err := svc.GetQuote(context.Background(), "Q-3F2A9C1B")

		assert.Equal(t, service.ErrRepositoryNotConfigured, err)
		assert.Nil(t, quote)
	})
}

func TestQuotesService_ListQuotes(t *testing.T) {
	mockRepo := new(mocks.MockQuotesRepositoryInterface)
	quotes := []*model.Quote{
		{ID: primitive.NewObjectID(), Reference: "Q-AAAA1111"},
		{ID: primitive.NewObjectID(), Reference: "Q-BBBB2222"},
	}
	mockRepo.On("List", mock.Anything, int64(10), int64(0)).Return(quotes, nil)

	svc := service.NewQuotesService(mockRepo, new(mocks.MockOptimizer))
	got, err := svc.ListQuotes(context.Background(), 10, 0)

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	mockRepo.AssertExpectations(t)
}
