// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
)

// PresetsRepositoryInterface defines the interface for preset set repository operations.
type PresetsRepositoryInterface interface {
	GetActive(ctx context.Context, kind string) (*PresetConfig, error)
	ReplaceContainers(ctx context.Context, presets []model.ContainerPreset) (*PresetConfig, error)
	ReplacePallets(ctx context.Context, presets []model.PalletPreset) (*PresetConfig, error)
	List(ctx context.Context, kind string, limit int) ([]PresetConfig, error)
}

// ProductsRepositoryInterface defines the interface for catalog product repository operations.
type ProductsRepositoryInterface interface {
	Create(ctx context.Context, product *ProductDocument) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*ProductDocument, error)
	FindBySKU(ctx context.Context, sku string) (*ProductDocument, error)
	Update(ctx context.Context, product *ProductDocument) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, filter bson.M, limit, skip int64) ([]*ProductDocument, error)
}

// QuotesRepositoryInterface defines the interface for quote repository operations.
type QuotesRepositoryInterface interface {
	Create(ctx context.Context, quote *model.Quote) error
	FindByReference(ctx context.Context, reference string) (*model.Quote, error)
	List(ctx context.Context, limit, skip int64) ([]*model.Quote, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
