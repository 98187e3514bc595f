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

// QuotesRepository implements saved quote storage using MongoDB.
type QuotesRepository struct {
	collection *mongo.Collection
}

// NewQuotesRepository creates a new quotes repository.
func NewQuotesRepository(db *MongoDB) *QuotesRepository {
	return &QuotesRepository{
		collection: db.Quotes,
	}
}

// Create inserts a new quote.
func (r *QuotesRepository) Create(ctx context.Context, quote *model.Quote) error {
	quote.CreatedAt = time.Now()
	if quote.ID.IsZero() {
		quote.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, quote)
	return err
}

// FindByReference finds a quote by its human-facing reference.
func (r *QuotesRepository) FindByReference(ctx context.Context, reference string) (*model.Quote, error) {
	var quote model.Quote
	err := r.collection.FindOne(ctx, bson.M{"reference": reference}).Decode(&quote)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// List retrieves quotes with pagination, newest first.
func (r *QuotesRepository) List(ctx context.Context, limit, skip int64) ([]*model.Quote, error) {
	opts := options.Find().SetLimit(limit).SetSkip(skip).SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var quotes []*model.Quote
	if err := cursor.All(ctx, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}
