package repository

import (
	"context"
	"errors"

	"github.com/Lixing-Zhang/fashion-store/internal/catalog"
	"github.com/Lixing-Zhang/fashion-store/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	GetByCategory(ctx context.Context, category string) ([]models.Product, error)
	GetCategories(ctx context.Context) ([]models.Category, error)
	HasCategory(ctx context.Context, name string) bool
}

// CatalogProductRepository serves products from an immutable catalog
type CatalogProductRepository struct {
	catalog *catalog.Catalog
}

// NewCatalogProductRepository creates a repository backed by c
func NewCatalogProductRepository(c *catalog.Catalog) *CatalogProductRepository {
	return &CatalogProductRepository{
		catalog: c,
	}
}

// NewInMemoryProductRepository creates a repository seeded with the store's reference catalog
func NewInMemoryProductRepository() *CatalogProductRepository {
	return NewCatalogProductRepository(catalog.Reference())
}

// GetAll returns all products in catalog order
func (r *CatalogProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.catalog.List(catalog.NoCategory), nil
}

// GetByID returns a product by its ID
func (r *CatalogProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	product, exists := r.catalog.Lookup(id)
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// GetByCategory returns the products in one category, in catalog order
func (r *CatalogProductRepository) GetByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return r.catalog.List(category), nil
}

// GetCategories returns the category descriptors in display order
func (r *CatalogProductRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	return r.catalog.Categories(), nil
}

// HasCategory reports whether the catalog defines the named category
func (r *CatalogProductRepository) HasCategory(ctx context.Context, name string) bool {
	return r.catalog.HasCategory(name)
}
