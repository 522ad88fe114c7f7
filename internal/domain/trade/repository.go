package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentSummary is a read model of a document header joined with the
// partner and employee names it references
type DocumentSummary struct {
	ID           uuid.UUID       `json:"id"`
	Number       string          `json:"number"`
	Type         DocumentType    `json:"type"`
	Date         time.Time       `json:"date"`
	PartnerID    *uuid.UUID      `json:"partner_id"`
	PartnerName  string          `json:"partner_name"`
	EmployeeID   *uuid.UUID      `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Status       DocumentStatus  `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ItemDetail is a read model of a line item joined with its product
type ItemDetail struct {
	ID          uuid.UUID       `json:"id"`
	DocumentID  uuid.UUID       `json:"document_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductCode string          `json:"product_code"`
	Quantity    decimal.Decimal `json:"qty"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// DocumentRepository defines the persistence contract for trade documents
type DocumentRepository interface {
	// Create inserts a document header together with its items
	Create(ctx context.Context, doc *Document) error

	// FindByID loads a document with its items
	FindByID(ctx context.Context, id uuid.UUID) (*Document, error)

	// SaveWithLock persists header changes with an optimistic version check.
	// Returns shared.ErrConcurrencyConflict when the stored version moved on.
	SaveWithLock(ctx context.Context, doc *Document) error

	// ReplaceItems swaps the full item set of a document
	ReplaceItems(ctx context.Context, documentID uuid.UUID, items []DocumentItem) error

	// Delete removes the document and its items
	Delete(ctx context.Context, id uuid.UUID) error

	// FindAll lists document summaries, newest date first, optionally
	// restricted to one type
	FindAll(ctx context.Context, docType *DocumentType) ([]DocumentSummary, error)

	// FindItems lists the item details of one document
	FindItems(ctx context.Context, documentID uuid.UUID) ([]ItemDetail, error)

	// SumTotalByType sums TotalAmount over all documents of a type
	SumTotalByType(ctx context.Context, docType DocumentType) (decimal.Decimal, error)
}
