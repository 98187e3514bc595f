package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/repository"
)

// ErrDuplicateSKU is returned when a product create or update collides with
// an existing SKU.
var ErrDuplicateSKU = errors.New("sku already in use")

// ErrUnknownProduct is returned when a catalog reference in an optimization
// request cannot be resolved.
var ErrUnknownProduct = errors.New("unknown product")

// CatalogService provides catalog product operations.
type CatalogService interface {
	CreateProduct(ctx context.Context, product model.Product) (*repository.ProductDocument, error)
	GetProduct(ctx context.Context, id primitive.ObjectID) (*repository.ProductDocument, error)
	UpdateProduct(ctx context.Context, id primitive.ObjectID, product model.Product) (*repository.ProductDocument, error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error
	ListProducts(ctx context.Context, limit, skip int64, includeRetired bool) ([]*repository.ProductDocument, error)
	// ResolveRequests fills in catalog products for requests that reference
	// them by id or SKU instead of carrying inline dimensions.
	ResolveRequests(ctx context.Context, requests []model.ProductRequest) ([]model.ProductRequest, error)
}

// CatalogServiceImpl implements CatalogService.
type CatalogServiceImpl struct {
	productsRepo repository.ProductsRepositoryInterface
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productsRepo repository.ProductsRepositoryInterface) CatalogService {
	if productsRepo == nil {
		return &CatalogServiceImpl{}
	}
	return &CatalogServiceImpl{
		productsRepo: productsRepo,
	}
}

func (s *CatalogServiceImpl) CreateProduct(ctx context.Context, product model.Product) (*repository.ProductDocument, error) {
	if s.productsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	doc := &repository.ProductDocument{
		Name:       product.Name,
		SKU:        product.SKU,
		Dimensions: product.Dimensions,
		Weight:     product.Weight,
	}
	if err := s.productsRepo.Create(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateSKU
		}
		return nil, err
	}
	return doc, nil
}

func (s *CatalogServiceImpl) GetProduct(ctx context.Context, id primitive.ObjectID) (*repository.ProductDocument, error) {
	if s.productsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.productsRepo.FindByID(ctx, id)
}

func (s *CatalogServiceImpl) UpdateProduct(ctx context.Context, id primitive.ObjectID, product model.Product) (*repository.ProductDocument, error) {
	if s.productsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	doc, err := s.productsRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	doc.Name = product.Name
	doc.SKU = product.SKU
	doc.Dimensions = product.Dimensions
	doc.Weight = product.Weight
	if err := s.productsRepo.Update(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateSKU
		}
		return nil, err
	}
	return doc, nil
}

func (s *CatalogServiceImpl) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	if s.productsRepo == nil {
		return ErrRepositoryNotConfigured
	}
	return s.productsRepo.Delete(ctx, id)
}

func (s *CatalogServiceImpl) ListProducts(ctx context.Context, limit, skip int64, includeRetired bool) ([]*repository.ProductDocument, error) {
	if s.productsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	filter := bson.M{"active": true}
	if includeRetired {
		filter = bson.M{}
	}
	return s.productsRepo.List(ctx, filter, limit, skip)
}

// ResolveRequests replaces catalog references with their stored products.
// A request is a catalog reference when its product carries no dimensions,
// only an id or SKU. Inline products pass through untouched.
func (s *CatalogServiceImpl) ResolveRequests(ctx context.Context, requests []model.ProductRequest) ([]model.ProductRequest, error) {
	resolved := make([]model.ProductRequest, len(requests))
	copy(resolved, requests)

	for i, req := range resolved {
		if !isCatalogReference(req.Product) {
			continue
		}
		if s.productsRepo == nil {
			return nil, ErrRepositoryNotConfigured
		}

		doc, err := s.lookupProduct(ctx, req.Product)
		if err != nil {
			return nil, err
		}
		if doc == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, req.Product.Identifier())
		}

		resolved[i].Product = doc.ToModel()
	}

	return resolved, nil
}

func (s *CatalogServiceImpl) lookupProduct(ctx context.Context, product model.Product) (*repository.ProductDocument, error) {
	if product.ID != "" {
		id, err := primitive.ObjectIDFromHex(product.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, product.ID)
		}
		return s.productsRepo.FindByID(ctx, id)
	}
	return s.productsRepo.FindBySKU(ctx, product.SKU)
}

// isCatalogReference reports whether the product only names a catalog entry
// instead of describing itself.
func isCatalogReference(p model.Product) bool {
	hasDimensions := p.Dimensions.Length != 0 || p.Dimensions.Width != 0 || p.Dimensions.Height != 0
	return !hasDimensions && (p.ID != "" || p.SKU != "")
}
