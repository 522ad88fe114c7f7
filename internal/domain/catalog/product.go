package catalog

import (
	"time"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a sellable or purchasable good. StockQty is the cached
// on-hand balance; it is mutated only through stock movement posting and may
// go negative (oversell is tolerated, the ledger stays authoritative).
type Product struct {
	shared.BaseEntity
	Code          string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name          string          `gorm:"type:varchar(200);not null"`
	Category      string          `gorm:"type:varchar(100)"`
	Unit          string          `gorm:"type:varchar(20)"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	SalesPrice    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	StockQty      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(code, name, category, unit string, purchasePrice, salesPrice decimal.Decimal) (*Product, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if purchasePrice.IsNegative() || salesPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}

	return &Product{
		BaseEntity:    shared.NewBaseEntity(),
		Code:          code,
		Name:          name,
		Category:      category,
		Unit:          unit,
		PurchasePrice: purchasePrice,
		SalesPrice:    salesPrice,
		StockQty:      decimal.Zero,
	}, nil
}

// UpdateDetails updates the descriptive fields
func (p *Product) UpdateDetails(name, category, unit string, purchasePrice, salesPrice decimal.Decimal) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if purchasePrice.IsNegative() || salesPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}
	p.Name = name
	p.Category = category
	p.Unit = unit
	p.PurchasePrice = purchasePrice
	p.SalesPrice = salesPrice
	p.UpdatedAt = time.Now()
	return nil
}
