package trade

import (
	"context"

	"github.com/bizdesk/backend/internal/domain/catalog"
	"github.com/bizdesk/backend/internal/domain/inventory"
	"github.com/bizdesk/backend/internal/domain/trade"
)

// TransactionScope provides transactional access to the repositories a
// document operation touches. Everything executed inside one scope commits
// or rolls back as a unit.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories scoped to the
// current transaction. Document completion writes all three: the header, the
// stock ledger, and the cached product balance.
type TransactionalRepositories interface {
	// Documents returns the document repository scoped to the current transaction
	Documents() trade.DocumentRepository
	// Products returns the product repository scoped to the current transaction
	Products() catalog.ProductRepository
	// Movements returns the stock ledger repository scoped to the current transaction
	Movements() inventory.StockMovementRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful in tests where the backing store handles atomicity itself.
type NoOpTransactionScope struct {
	documentRepo trade.DocumentRepository
	productRepo  catalog.ProductRepository
	movementRepo inventory.StockMovementRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(
	documentRepo trade.DocumentRepository,
	productRepo catalog.ProductRepository,
	movementRepo inventory.StockMovementRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		documentRepo: documentRepo,
		productRepo:  productRepo,
		movementRepo: movementRepo,
	}
}

// Execute runs the function without transactional guarantees
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Documents returns the document repository
func (s *NoOpTransactionScope) Documents() trade.DocumentRepository {
	return s.documentRepo
}

// Products returns the product repository
func (s *NoOpTransactionScope) Products() catalog.ProductRepository {
	return s.productRepo
}

// Movements returns the stock ledger repository
func (s *NoOpTransactionScope) Movements() inventory.StockMovementRepository {
	return s.movementRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
