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

// ProductDocument is the stored form of a catalog product.
type ProductDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	SKU        string             `bson:"sku,omitempty" json:"sku,omitempty"`
	Dimensions model.Dimensions   `bson:"dimensions" json:"dimensions"`
	Weight     float64            `bson:"weight" json:"weight"`
	Active     bool               `bson:"active" json:"active"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// ToModel converts the stored document to the engine's product value.
func (d *ProductDocument) ToModel() model.Product {
	return model.Product{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		SKU:        d.SKU,
		Dimensions: d.Dimensions,
		Weight:     d.Weight,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// ProductsRepository implements catalog product storage using MongoDB.
type ProductsRepository struct {
	collection *mongo.Collection
}

// NewProductsRepository creates a new products repository.
func NewProductsRepository(db *MongoDB) *ProductsRepository {
	return &ProductsRepository{
		collection: db.Products,
	}
}

// Create inserts a new product into the catalog.
func (r *ProductsRepository) Create(ctx context.Context, product *ProductDocument) error {
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()
	product.Active = true
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, product)
	return err
}

// FindByID finds a product by ID.
func (r *ProductsRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*ProductDocument, error) {
	var product ProductDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindBySKU finds a product by SKU.
func (r *ProductsRepository) FindBySKU(ctx context.Context, sku string) (*ProductDocument, error) {
	var product ProductDocument
	err := r.collection.FindOne(ctx, bson.M{"sku": sku}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Update updates an existing product.
func (r *ProductsRepository) Update(ctx context.Context, product *ProductDocument) error {
	product.UpdatedAt = time.Now()
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": product.ID},
		bson.M{"$set": product},
	)
	return err
}

// Delete soft deletes a product by setting active to false. Retired products
// stay resolvable so saved quotes keep their line items.
func (r *ProductsRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	return err
}

// List retrieves products with pagination.
func (r *ProductsRepository) List(ctx context.Context, filter bson.M, limit, skip int64) ([]*ProductDocument, error) {
	opts := options.Find().SetLimit(limit).SetSkip(skip).SetSort(bson.M{"name": 1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var products []*ProductDocument
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
