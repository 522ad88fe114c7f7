package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementDetail is a read model of a ledger entry joined with its product
type MovementDetail struct {
	ID          uuid.UUID         `json:"id"`
	ProductID   uuid.UUID         `json:"product_id"`
	ProductName string            `json:"product_name"`
	ProductCode string            `json:"product_code"`
	Direction   MovementDirection `json:"type"`
	Quantity    decimal.Decimal   `json:"qty"`
	Reference   string            `json:"reference"`
	CreatedAt   time.Time         `json:"created_at"`
}

// StockMovementRepository defines the persistence contract for the stock ledger
type StockMovementRepository interface {
	// Create appends one ledger entry. Entries are never updated or deleted.
	Create(ctx context.Context, movement *StockMovement) error

	// FindAll lists ledger entries with product details, newest first
	FindAll(ctx context.Context) ([]MovementDetail, error)

	// FindByProduct lists ledger entries for one product, newest first
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]StockMovement, error)
}
