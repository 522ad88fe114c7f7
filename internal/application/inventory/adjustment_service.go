package inventory

import (
	"context"

	"github.com/bizdesk/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultAdjustmentReference is recorded when the caller gives no reference
const DefaultAdjustmentReference = "MANUAL-ADJUSTMENT"

// AdjustmentRequest carries the fields of a manual stock adjustment
type AdjustmentRequest struct {
	ProductID uuid.UUID
	Direction string
	Quantity  decimal.Decimal
	Reference string
}

// AdjustmentService posts manual corrections to the stock ledger
type AdjustmentService struct {
	scope        TransactionScope
	movementRepo inventory.StockMovementRepository
}

// NewAdjustmentService creates a new AdjustmentService
func NewAdjustmentService(scope TransactionScope, movementRepo inventory.StockMovementRepository) *AdjustmentService {
	return &AdjustmentService{
		scope:        scope,
		movementRepo: movementRepo,
	}
}

// Adjust appends one ledger entry and shifts the cached product balance in a
// single transaction. OUT subtracts, IN and ADJUSTMENT add. The balance may
// go negative; the ledger stays authoritative.
func (s *AdjustmentService) Adjust(ctx context.Context, req AdjustmentRequest) (*inventory.StockMovement, error) {
	reference := req.Reference
	if reference == "" {
		reference = DefaultAdjustmentReference
	}

	movement, err := inventory.NewStockMovement(
		req.ProductID,
		inventory.MovementDirection(req.Direction),
		req.Quantity,
		reference,
	)
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.Products().AdjustStock(ctx, movement.ProductID, movement.Direction.SignedDelta(movement.Quantity)); err != nil {
			return err
		}
		return repos.Movements().Create(ctx, movement)
	})
	if err != nil {
		return nil, err
	}

	return movement, nil
}

// ListMovements returns the full ledger with product details, newest first
func (s *AdjustmentService) ListMovements(ctx context.Context) ([]inventory.MovementDetail, error) {
	return s.movementRepo.FindAll(ctx)
}
