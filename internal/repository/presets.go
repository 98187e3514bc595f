package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
)

// Preset set kinds stored in the presets collection.
const (
	PresetKindContainers = "containers"
	PresetKindPallets    = "pallets"
)

// PresetConfig represents a stored preset set document. Exactly one of
// Containers or Pallets is populated, selected by Kind.
type PresetConfig struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Kind       string                 `bson:"kind" json:"kind"`
	Containers []model.ContainerPreset `bson:"containers,omitempty" json:"containers,omitempty"`
	Pallets    []model.PalletPreset    `bson:"pallets,omitempty" json:"pallets,omitempty"`
	Active     bool                   `bson:"active" json:"active"`
	Version    int                    `bson:"version" json:"version"`
	CreatedAt  time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time              `bson:"updated_at" json:"updated_at"`
	Metadata   map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// PresetsRepository provides methods for preset set operations.
type PresetsRepository struct {
	collection *mongo.Collection
}

// NewPresetsRepository creates a new presets repository.
func NewPresetsRepository(db *MongoDB) *PresetsRepository {
	return &PresetsRepository{
		collection: db.Presets,
	}
}

// GetActive returns the active preset set of the given kind.
func (r *PresetsRepository) GetActive(ctx context.Context, kind string) (*PresetConfig, error) {
	var config PresetConfig
	err := r.collection.FindOne(ctx, bson.M{"kind": kind, "active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil // No active preset set found
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// ReplaceContainers installs a new active container preset set, deactivating
// the previous one. Prior versions are kept for history.
func (r *PresetsRepository) ReplaceContainers(ctx context.Context, presets []model.ContainerPreset) (*PresetConfig, error) {
	config := PresetConfig{
		Kind:       PresetKindContainers,
		Containers: presets,
	}
	return r.replace(ctx, config)
}

// ReplacePallets installs a new active pallet preset set, deactivating the
// previous one.
func (r *PresetsRepository) ReplacePallets(ctx context.Context, presets []model.PalletPreset) (*PresetConfig, error) {
	config := PresetConfig{
		Kind:    PresetKindPallets,
		Pallets: presets,
	}
	return r.replace(ctx, config)
}

func (r *PresetsRepository) replace(ctx context.Context, config PresetConfig) (*PresetConfig, error) {
	version := 1
	current, err := r.GetActive(ctx, config.Kind)
	if err != nil {
		return nil, err
	}
	if current != nil {
		version = current.Version + 1
	}

	_, err = r.collection.UpdateMany(
		ctx,
		bson.M{"kind": config.Kind, "active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	config.ID = primitive.NewObjectID()
	config.Active = true
	config.Version = version
	config.CreatedAt = time.Now()
	config.UpdatedAt = time.Now()
	config.Metadata = make(map[string]interface{})

	_, err = r.collection.InsertOne(ctx, config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// List returns preset set versions of the given kind, newest first.
func (r *PresetsRepository) List(ctx context.Context, kind string, limit int) ([]PresetConfig, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"kind": kind}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var configs []PresetConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}

	return configs, nil
}
