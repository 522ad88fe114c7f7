package trade

import (
	"context"

	"github.com/bizdesk/backend/internal/domain/inventory"
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/bizdesk/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// DocumentService drives the trade document lifecycle. Every mutation runs in
// one transaction scope; completing a document appends stock ledger entries
// and moves the cached product balances in that same transaction.
type DocumentService struct {
	scope        TransactionScope
	documentRepo trade.DocumentRepository
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(scope TransactionScope, documentRepo trade.DocumentRepository) *DocumentService {
	return &DocumentService{
		scope:        scope,
		documentRepo: documentRepo,
	}
}

// Create creates a new trade document with its line items
func (s *DocumentService) Create(ctx context.Context, req CreateDocumentRequest) (*CreateDocumentResponse, error) {
	doc, err := trade.NewDocument(
		req.Number,
		trade.DocumentType(req.Type),
		req.Date,
		req.PartnerID,
		req.EmployeeID,
		trade.DocumentStatus(req.Status),
		req.TotalAmount,
	)
	if err != nil {
		return nil, err
	}
	for _, item := range req.Items {
		if err := doc.AddItem(item.ProductID, item.Quantity, item.Price, item.Subtotal); err != nil {
			return nil, err
		}
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		for _, item := range doc.Items {
			if _, err := repos.Products().FindByID(ctx, item.ProductID); err != nil {
				return shared.NewDomainError("INVALID_INPUT", "Unknown product referenced by item: "+item.ProductID.String())
			}
		}
		return repos.Documents().Create(ctx, doc)
	})
	if err != nil {
		return nil, err
	}

	return &CreateDocumentResponse{ID: doc.ID, Number: doc.Number}, nil
}

// Update applies a partial update to a document. When the update moves the
// document into COMPLETED and its type touches inventory, one ledger entry
// per line item is appended and the product balances are shifted, atomically
// with the header save. The optimistic version check on the header serializes
// concurrent completions: the loser rolls back and posts nothing.
func (s *DocumentService) Update(ctx context.Context, id uuid.UUID, req UpdateDocumentRequest) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		doc, err := repos.Documents().FindByID(ctx, id)
		if err != nil {
			return err
		}

		prior := doc.Status
		if req.Status != nil {
			if err := doc.ChangeStatus(trade.DocumentStatus(*req.Status)); err != nil {
				return err
			}
		}
		if req.TotalAmount != nil {
			doc.SetTotalAmount(*req.TotalAmount)
		}

		if req.Items != nil {
			items := make([]trade.DocumentItem, 0, len(*req.Items))
			for _, ir := range *req.Items {
				if _, err := repos.Products().FindByID(ctx, ir.ProductID); err != nil {
					return shared.NewDomainError("INVALID_INPUT", "Unknown product referenced by item: "+ir.ProductID.String())
				}
				item, err := trade.NewDocumentItem(doc.ID, ir.ProductID, ir.Quantity, ir.Price, ir.Subtotal)
				if err != nil {
					return err
				}
				items = append(items, *item)
			}
			if err := repos.Documents().ReplaceItems(ctx, doc.ID, items); err != nil {
				return err
			}
			doc.Items = items
		}

		if err := repos.Documents().SaveWithLock(ctx, doc); err != nil {
			return err
		}

		if doc.BecameCompleted(prior) && doc.Type.MovesStock() {
			direction := inventory.MovementDirectionIn
			if doc.Type.IssuesStock() {
				direction = inventory.MovementDirectionOut
			}
			for _, item := range doc.Items {
				movement, err := inventory.NewStockMovement(item.ProductID, direction, item.Quantity, doc.Number)
				if err != nil {
					return err
				}
				if err := repos.Movements().Create(ctx, movement); err != nil {
					return err
				}
				if err := repos.Products().AdjustStock(ctx, item.ProductID, direction.SignedDelta(item.Quantity)); err != nil {
					return err
				}
			}
		}

		return nil
	})
}

// Delete removes a document and its items. Ledger entries posted by an
// earlier completion stay untouched, as do the product balances.
func (s *DocumentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.Documents().FindByID(ctx, id); err != nil {
			return err
		}
		return repos.Documents().Delete(ctx, id)
	})
}

// List returns document summaries, optionally restricted to one type
func (s *DocumentService) List(ctx context.Context, docType *string) ([]trade.DocumentSummary, error) {
	var filter *trade.DocumentType
	if docType != nil && *docType != "" {
		t := trade.DocumentType(*docType)
		if !t.IsValid() {
			return nil, shared.NewDomainError("INVALID_TYPE", "Unknown document type: "+*docType)
		}
		filter = &t
	}
	return s.documentRepo.FindAll(ctx, filter)
}

// ListItems returns the line items of one document with product details
func (s *DocumentService) ListItems(ctx context.Context, id uuid.UUID) ([]trade.ItemDetail, error) {
	if _, err := s.documentRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.documentRepo.FindItems(ctx, id)
}
