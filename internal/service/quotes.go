package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/repository"
)

// QuotesService runs optimizations and persists their outcomes as quotes.
type QuotesService interface {
	// CreateQuote optimizes the request, stores the quote, and returns both
	// the stored quote and the full optimization result.
	CreateQuote(ctx context.Context, requests []model.ProductRequest, container model.Container, pallet model.PalletTemplate, note string) (*model.Quote, *model.OptimizationResult, error)
	GetQuote(ctx context.Context, reference string) (*model.Quote, error)
	ListQuotes(ctx context.Context, limit, skip int64) ([]*model.Quote, error)
}

// QuotesServiceImpl implements QuotesService.
type QuotesServiceImpl struct {
	quotesRepo repository.QuotesRepositoryInterface
	optimizer  Optimizer
}

// NewQuotesService creates a new quotes service.
func NewQuotesService(quotesRepo repository.QuotesRepositoryInterface, optimizer Optimizer) QuotesService {
	return &QuotesServiceImpl{
		quotesRepo: quotesRepo,
		optimizer:  optimizer,
	}
}

func (s *QuotesServiceImpl) CreateQuote(ctx context.Context, requests []model.ProductRequest, container model.Container, pallet model.PalletTemplate, note string) (*model.Quote, *model.OptimizationResult, error) {
	if s.quotesRepo == nil {
		return nil, nil, ErrRepositoryNotConfigured
	}

	result := s.optimizer.Optimize(requests, container, pallet)
	quote := &model.Quote{
		Reference: newQuoteReference(),
		Requests:  requests,
		Container: container,
		Pallet:    pallet,
		Summary:   s.optimizer.PrepareSummary(result),
		Note:      note,
	}

	if err := s.quotesRepo.Create(ctx, quote); err != nil {
		return nil, nil, err
	}
	return quote, &result, nil
}

func (s *QuotesServiceImpl) GetQuote(ctx context.Context, reference string) (*model.Quote, error) {
	if s.quotesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.quotesRepo.FindByReference(ctx, reference)
}

func (s *QuotesServiceImpl) ListQuotes(ctx context.Context, limit, skip int64) ([]*model.Quote, error) {
	if s.quotesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.quotesRepo.List(ctx, limit, skip)
}

// newQuoteReference builds a short human-facing quote number like Q-3F2A9C1B.
func newQuoteReference() string {
	compact := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "Q-" + strings.ToUpper(compact[:8])
}
