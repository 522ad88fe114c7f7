package catalog

import (
	"context"

	"github.com/bizdesk/backend/internal/domain/catalog"
)

// ProductService exposes catalog queries to the HTTP layer
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// List returns all products ordered by code
func (s *ProductService) List(ctx context.Context) ([]catalog.Product, error) {
	return s.productRepo.FindAll(ctx)
}
