package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductRepository defines the persistence contract for products
type ProductRepository interface {
	// Create inserts a new product
	Create(ctx context.Context, product *Product) error

	// FindByID finds a product by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByCode finds a product by its unique code
	FindByCode(ctx context.Context, code string) (*Product, error)

	// FindAll lists all products ordered by code
	FindAll(ctx context.Context) ([]Product, error)

	// AdjustStock applies a signed delta to the cached stock balance in one
	// atomic statement. Returns shared.ErrNotFound when the product is missing.
	AdjustStock(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error

	// Count returns the number of products
	Count(ctx context.Context) (int64, error)
}
