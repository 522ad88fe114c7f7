package inventory

import (
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementDirection represents the direction of a stock movement
type MovementDirection string

const (
	MovementDirectionIn         MovementDirection = "IN"
	MovementDirectionOut        MovementDirection = "OUT"
	MovementDirectionAdjustment MovementDirection = "ADJUSTMENT"
)

// IsValid checks if the direction is a valid MovementDirection
func (d MovementDirection) IsValid() bool {
	switch d {
	case MovementDirectionIn, MovementDirectionOut, MovementDirectionAdjustment:
		return true
	}
	return false
}

// String returns the string representation of MovementDirection
func (d MovementDirection) String() string {
	return string(d)
}

// SignedDelta converts a positive movement quantity into the signed change to
// apply to the product stock level. OUT subtracts; IN and ADJUSTMENT add.
func (d MovementDirection) SignedDelta(quantity decimal.Decimal) decimal.Decimal {
	if d == MovementDirectionOut {
		return quantity.Neg()
	}
	return quantity
}

// StockMovement is one entry in the append-only stock ledger. Quantity is
// always stored positive; Direction carries the sign.
type StockMovement struct {
	shared.BaseEntity
	ProductID uuid.UUID         `gorm:"type:uuid;not null;index"`
	Direction MovementDirection `gorm:"type:varchar(20);not null;column:type"`
	Quantity  decimal.Decimal   `gorm:"type:decimal(18,4);not null;column:qty"`
	Reference string            `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (StockMovement) TableName() string {
	return "stock_movements"
}

// NewStockMovement creates a new ledger entry
func NewStockMovement(productID uuid.UUID, direction MovementDirection, quantity decimal.Decimal, reference string) (*StockMovement, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if !direction.IsValid() {
		return nil, shared.NewDomainError("INVALID_DIRECTION", "Unknown movement direction: "+string(direction))
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	return &StockMovement{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Direction:  direction,
		Quantity:   quantity,
		Reference:  reference,
	}, nil
}
