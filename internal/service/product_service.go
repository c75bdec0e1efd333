package service

import (
	"context"

	"github.com/Lixing-Zhang/fashion-store/internal/catalog"
	"github.com/Lixing-Zhang/fashion-store/internal/models"
	"github.com/Lixing-Zhang/fashion-store/internal/repository"
)

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns the products in category, or all products when category is empty.
// An unknown category yields an empty list.
func (s *ProductService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	if category == catalog.NoCategory {
		return s.repo.GetAll(ctx)
	}
	return s.repo.GetByCategory(ctx, category)
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// ListCategories returns the browsable categories
func (s *ProductService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.repo.GetCategories(ctx)
}
