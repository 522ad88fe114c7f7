package persistence

import (
	"context"
	"testing"

	appinventory "github.com/bizdesk/backend/internal/application/inventory"
	"github.com/bizdesk/backend/internal/domain/inventory"
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAdjustmentService(db *gorm.DB) *appinventory.AdjustmentService {
	return appinventory.NewAdjustmentService(
		NewGormInventoryTransactionScope(db),
		NewGormStockMovementRepository(db),
	)
}

func TestAdjustmentService_Adjust(t *testing.T) {
	ctx := context.Background()

	t.Run("IN adds to the balance", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newAdjustmentService(db)
		product := createTestProduct(t, db, "P001", 10)

		movement, err := svc.Adjust(ctx, appinventory.AdjustmentRequest{
			ProductID: product.ID,
			Direction: "IN",
			Quantity:  decimal.NewFromInt(5),
			Reference: "RECOUNT-2024-02",
		})

		require.NoError(t, err)
		assert.Equal(t, inventory.MovementDirectionIn, movement.Direction)
		assert.Equal(t, "RECOUNT-2024-02", movement.Reference)
		assert.True(t, stockOf(t, db, product.ID).Equal(decimal.NewFromInt(15)))
	})

	t.Run("OUT subtracts from the balance", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newAdjustmentService(db)
		product := createTestProduct(t, db, "P001", 10)

		movement, err := svc.Adjust(ctx, appinventory.AdjustmentRequest{
			ProductID: product.ID,
			Direction: "OUT",
			Quantity:  decimal.NewFromInt(3),
		})

		require.NoError(t, err)
		assert.True(t, movement.Quantity.Equal(decimal.NewFromInt(3)), "ledger quantity stays positive")
		assert.True(t, stockOf(t, db, product.ID).Equal(decimal.NewFromInt(7)))
	})

	t.Run("ADJUSTMENT adds like IN", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newAdjustmentService(db)
		product := createTestProduct(t, db, "P001", 0)

		_, err := svc.Adjust(ctx, appinventory.AdjustmentRequest{
			ProductID: product.ID,
			Direction: "ADJUSTMENT",
			Quantity:  decimal.NewFromInt(2),
		})

		require.NoError(t, err)
		assert.True(t, stockOf(t, db, product.ID).Equal(decimal.NewFromInt(2)))
	})

	t.Run("defaults the reference when empty", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newAdjustmentService(db)
		product := createTestProduct(t, db, "P001", 0)

		movement, err := svc.Adjust(ctx, appinventory.AdjustmentRequest{
			ProductID: product.ID,
			Direction: "IN",
			Quantity:  decimal.NewFromInt(1),
		})

		require.NoError(t, err)
		assert.Equal(t, appinventory.DefaultAdjustmentReference, movement.Reference)
	})

	t.Run("may drive the balance negative", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newAdjustmentService(db)
		product := createTestProduct(t, db, "P001", 1)

		_, err := svc.Adjust(ctx, appinventory.AdjustmentRequest{
			ProductID: product.ID,
			Direction: "OUT",
			Quantity:  decimal.NewFromInt(4),
		})

		require.NoError(t, err)
		assert.True(t, stockOf(t, db, product.ID).Equal(decimal.NewFromInt(-3)))
	})

	t.Run("fails for unknown product and writes no ledger entry", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newAdjustmentService(db)

		_, err := svc.Adjust(ctx, appinventory.AdjustmentRequest{
			ProductID: uuid.New(),
			Direction: "IN",
			Quantity:  decimal.NewFromInt(1),
		})

		require.ErrorIs(t, err, shared.ErrNotFound)
		var count int64
		require.NoError(t, db.Model(&inventory.StockMovement{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newAdjustmentService(db)
		product := createTestProduct(t, db, "P001", 5)

		_, err := svc.Adjust(ctx, appinventory.AdjustmentRequest{
			ProductID: product.ID,
			Direction: "OUT",
			Quantity:  decimal.Zero,
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_QUANTITY", domainErr.Code)
		assert.True(t, stockOf(t, db, product.ID).Equal(decimal.NewFromInt(5)))
	})

	t.Run("rejects unknown direction", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newAdjustmentService(db)
		product := createTestProduct(t, db, "P001", 5)

		_, err := svc.Adjust(ctx, appinventory.AdjustmentRequest{
			ProductID: product.ID,
			Direction: "SIDEWAYS",
			Quantity:  decimal.NewFromInt(1),
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_DIRECTION", domainErr.Code)
	})
}

func TestAdjustmentService_ListMovements(t *testing.T) {
	db := setupTestDB(t)
	svc := newAdjustmentService(db)
	ctx := context.Background()
	product := createTestProduct(t, db, "P001", 0)

	_, err := svc.Adjust(ctx, appinventory.AdjustmentRequest{
		ProductID: product.ID, Direction: "IN", Quantity: decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	_, err = svc.Adjust(ctx, appinventory.AdjustmentRequest{
		ProductID: product.ID, Direction: "OUT", Quantity: decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	details, err := svc.ListMovements(ctx)

	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, product.ID, details[0].ProductID)
	assert.Equal(t, "P001", details[0].ProductCode)
	assert.Equal(t, "Product P001", details[0].ProductName)
}
