package persistence

import (
	"context"

	"github.com/bizdesk/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStockMovementRepository implements inventory.StockMovementRepository using GORM
type GormStockMovementRepository struct {
	db *gorm.DB
}

// NewGormStockMovementRepository creates a new GormStockMovementRepository
func NewGormStockMovementRepository(db *gorm.DB) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db}
}

// Create appends one ledger entry
func (r *GormStockMovementRepository) Create(ctx context.Context, movement *inventory.StockMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

// FindAll lists ledger entries joined with products, newest first
func (r *GormStockMovementRepository) FindAll(ctx context.Context) ([]inventory.MovementDetail, error) {
	var movements []inventory.MovementDetail
	err := r.db.WithContext(ctx).
		Table("stock_movements AS m").
		Select(`m.id, m.product_id, COALESCE(p.name, '') AS product_name, COALESCE(p.code, '') AS product_code,
			m.type AS direction, m.qty AS quantity, m.reference, m.created_at`).
		Joins("LEFT JOIN products p ON p.id = m.product_id").
		Order("m.created_at DESC").
		Scan(&movements).Error
	if err != nil {
		return nil, err
	}
	return movements, nil
}

// FindByProduct lists ledger entries for one product, newest first
func (r *GormStockMovementRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]inventory.StockMovement, error) {
	var movements []inventory.StockMovement
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&movements).Error
	if err != nil {
		return nil, err
	}
	return movements, nil
}

var _ inventory.StockMovementRepository = (*GormStockMovementRepository)(nil)
