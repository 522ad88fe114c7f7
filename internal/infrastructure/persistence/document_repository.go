package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/bizdesk/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormDocumentRepository implements trade.DocumentRepository using GORM
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new GormDocumentRepository
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

// Create inserts a document header together with its items
func (r *GormDocumentRepository) Create(ctx context.Context, doc *trade.Document) error {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return shared.ErrInvalidInput
		}
		return err
	}
	return nil
}

// FindByID loads a document with its items
func (r *GormDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Document, error) {
	var doc trade.Document
	err := r.db.WithContext(ctx).Preload("Items").First(&doc, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// SaveWithLock persists header changes with an optimistic version check. The
// single compare-and-swap statement is what serializes concurrent saves: the
// second writer matches zero rows and gets a concurrency conflict.
func (r *GormDocumentRepository) SaveWithLock(ctx context.Context, doc *trade.Document) error {
	currentVersion := doc.Version
	doc.Version++
	doc.UpdatedAt = time.Now()

	result := r.db.WithContext(ctx).Model(&trade.Document{}).
		Where("id = ? AND version = ?", doc.ID, currentVersion).
		Updates(map[string]interface{}{
			"date":         doc.Date,
			"partner_id":   doc.PartnerID,
			"employee_id":  doc.EmployeeID,
			"status":       doc.Status,
			"total_amount": doc.TotalAmount,
			"version":      doc.Version,
			"updated_at":   doc.UpdatedAt,
		})
	if result.Error != nil {
		doc.Version = currentVersion
		return result.Error
	}
	if result.RowsAffected == 0 {
		doc.Version = currentVersion
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// ReplaceItems swaps the full item set of a document
func (r *GormDocumentRepository) ReplaceItems(ctx context.Context, documentID uuid.UUID, items []trade.DocumentItem) error {
	if err := r.db.WithContext(ctx).Where("document_id = ?", documentID).Delete(&trade.DocumentItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// Delete removes the document and its items
func (r *GormDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("document_id = ?", id).Delete(&trade.DocumentItem{}).Error; err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&trade.Document{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindAll lists document summaries joined with partner and employee names,
// newest date first
func (r *GormDocumentRepository) FindAll(ctx context.Context, docType *trade.DocumentType) ([]trade.DocumentSummary, error) {
	query := r.db.WithContext(ctx).
		Table("transactions AS t").
		Select(`t.id, t.number, t.type, t.date, t.partner_id, COALESCE(p.name, '') AS partner_name,
			t.employee_id, COALESCE(e.name, '') AS employee_name, t.status, t.total_amount, t.created_at`).
		Joins("LEFT JOIN partners p ON p.id = t.partner_id").
		Joins("LEFT JOIN employees e ON e.id = t.employee_id").
		Order("t.date DESC, t.created_at DESC")

	if docType != nil {
		query = query.Where("t.type = ?", *docType)
	}

	var summaries []trade.DocumentSummary
	if err := query.Scan(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

// FindItems lists the item details of one document joined with products
func (r *GormDocumentRepository) FindItems(ctx context.Context, documentID uuid.UUID) ([]trade.ItemDetail, error) {
	var items []trade.ItemDetail
	err := r.db.WithContext(ctx).
		Table("transaction_items AS i").
		Select(`i.id, i.document_id, i.product_id, COALESCE(pr.name, '') AS product_name,
			COALESCE(pr.code, '') AS product_code, i.qty AS quantity, i.price, i.subtotal`).
		Joins("LEFT JOIN products pr ON pr.id = i.product_id").
		Where("i.document_id = ?", documentID).
		Order("i.created_at ASC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// SumTotalByType sums TotalAmount over all documents of a type
func (r *GormDocumentRepository) SumTotalByType(ctx context.Context, docType trade.DocumentType) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&trade.Document{}).
		Where("type = ?", docType).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

var _ trade.DocumentRepository = (*GormDocumentRepository)(nil)
