// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/circuitbreaker"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
)

// PresetsRepositoryWithCircuitBreaker wraps PresetsRepository with circuit breaker protection.
type PresetsRepositoryWithCircuitBreaker struct {
	repo           *PresetsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewPresetsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewPresetsRepositoryWithCircuitBreaker(repo *PresetsRepository, cb *circuitbreaker.CircuitBreaker) *PresetsRepositoryWithCircuitBreaker {
	return &PresetsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active preset set with circuit breaker protection.
func (r *PresetsRepositoryWithCircuitBreaker) GetActive(ctx context.Context, kind string) (*PresetConfig, error) {
	var result *PresetConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx, kind)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - return nil to use compiled-in presets
		return nil, nil
	}
	return result, err
}

// ReplaceContainers installs a new container preset set with circuit breaker protection.
func (r *PresetsRepositoryWithCircuitBreaker) ReplaceContainers(ctx context.Context, presets []model.ContainerPreset) (*PresetConfig, error) {
	var result *PresetConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ReplaceContainers(ctx, presets)
		return cbErr
	})
	return result, err
}

// ReplacePallets installs a new pallet preset set with circuit breaker protection.
func (r *PresetsRepositoryWithCircuitBreaker) ReplacePallets(ctx context.Context, presets []model.PalletPreset) (*PresetConfig, error) {
	var result *PresetConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ReplacePallets(ctx, presets)
		return cbErr
	})
	return result, err
}

// List returns preset set versions with circuit breaker protection.
func (r *PresetsRepositoryWithCircuitBreaker) List(ctx context.Context, kind string, limit int) ([]PresetConfig, error) {
	var result []PresetConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, kind, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *PresetsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// ProductsRepositoryWithCircuitBreaker wraps ProductsRepository with circuit breaker protection.
type ProductsRepositoryWithCircuitBreaker struct {
	repo           *ProductsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewProductsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewProductsRepositoryWithCircuitBreaker(repo *ProductsRepository, cb *circuitbreaker.CircuitBreaker) *ProductsRepositoryWithCircuitBreaker {
	return &ProductsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create inserts a product with circuit breaker protection.
func (r *ProductsRepositoryWithCircuitBreaker) Create(ctx context.Context, product *ProductDocument) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, product)
	})
}

// FindByID finds a product by ID with circuit breaker protection.
func (r *ProductsRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*ProductDocument, error) {
	var result *ProductDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByID(ctx, id)
		return cbErr
	})
	return result, err
}

// FindBySKU finds a product by SKU with circuit breaker protection.
func (r *ProductsRepositoryWithCircuitBreaker) FindBySKU(ctx context.Context, sku string) (*ProductDocument, error) {
	var result *ProductDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindBySKU(ctx, sku)
		return cbErr
	})
	return result, err
}

// Update updates a product with circuit breaker protection.
func (r *ProductsRepositoryWithCircuitBreaker) Update(ctx context.Context, product *ProductDocument) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Update(ctx, product)
	})
}

// Delete soft deletes a product with circuit breaker protection.
func (r *ProductsRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// List retrieves products with circuit breaker protection.
func (r *ProductsRepositoryWithCircuitBreaker) List(ctx context.Context, filter bson.M, limit, skip int64) ([]*ProductDocument, error) {
	var result []*ProductDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, filter, limit, skip)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ProductsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// QuotesRepositoryWithCircuitBreaker wraps QuotesRepository with circuit breaker protection.
type QuotesRepositoryWithCircuitBreaker struct {
	repo           *QuotesRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewQuotesRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewQuotesRepositoryWithCircuitBreaker(repo *QuotesRepository, cb *circuitbreaker.CircuitBreaker) *QuotesRepositoryWithCircuitBreaker {
	return &QuotesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create inserts a quote with circuit breaker protection.
func (r *QuotesRepositoryWithCircuitBreaker) Create(ctx context.Context, quote *model.Quote) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, quote)
	})
}

// FindByReference finds a quote by reference with circuit breaker protection.
func (r *QuotesRepositoryWithCircuitBreaker) FindByReference(ctx context.Context, reference string) (*model.Quote, error) {
	var result *model.Quote
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByReference(ctx, reference)
		return cbErr
	})
	return result, err
}

// List retrieves quotes with circuit breaker protection.
func (r *QuotesRepositoryWithCircuitBreaker) List(ctx context.Context, limit, skip int64) ([]*model.Quote, error) {
	var result []*model.Quote
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit, skip)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *QuotesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
