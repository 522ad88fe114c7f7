package trade

import (
	"time"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentType represents the commercial type of a trade document
type DocumentType string

const (
	DocumentTypeQuotation       DocumentType = "QUOTATION"
	DocumentTypeSalesOrder      DocumentType = "SO"
	DocumentTypePurchaseOrder   DocumentType = "PO"
	DocumentTypePurchaseRequest DocumentType = "PR"
	DocumentTypeInvoiceIn       DocumentType = "INVOICE_IN"
	DocumentTypeInvoiceOut      DocumentType = "INVOICE_OUT"
)

// IsValid checks if the type is a valid DocumentType
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeQuotation, DocumentTypeSalesOrder, DocumentTypePurchaseOrder,
		DocumentTypePurchaseRequest, DocumentTypeInvoiceIn, DocumentTypeInvoiceOut:
		return true
	}
	return false
}

// String returns the string representation of DocumentType
func (t DocumentType) String() string {
	return string(t)
}

// ReceivesStock returns true for document types whose completion brings goods in
func (t DocumentType) ReceivesStock() bool {
	return t == DocumentTypePurchaseOrder || t == DocumentTypeInvoiceIn
}

// IssuesStock returns true for document types whose completion sends goods out
func (t DocumentType) IssuesStock() bool {
	return t == DocumentTypeSalesOrder || t == DocumentTypeInvoiceOut
}

// MovesStock returns true if completing a document of this type touches inventory.
// Quotations and purchase requests never do.
func (t DocumentType) MovesStock() bool {
	return t.ReceivesStock() || t.IssuesStock()
}

// DocumentStatus represents the lifecycle status of a trade document
type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "DRAFT"
	DocumentStatusApproved  DocumentStatus = "APPROVED"
	DocumentStatusRejected  DocumentStatus = "REJECTED"
	DocumentStatusCompleted DocumentStatus = "COMPLETED"
)

// IsValid checks if the status is a valid DocumentStatus
func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusDraft, DocumentStatusApproved, DocumentStatusRejected, DocumentStatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of DocumentStatus
func (s DocumentStatus) String() string {
	return string(s)
}

// DocumentItem represents a line item in a trade document.
// Price is a snapshot taken at capture time; Subtotal is caller-supplied
// and deliberately not recomputed from quantity and price.
type DocumentItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DocumentID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity   decimal.Decimal `gorm:"type:decimal(18,4);not null;column:qty"`
	Price      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DocumentItem) TableName() string {
	return "transaction_items"
}

// NewDocumentItem creates a new document line item
func NewDocumentItem(documentID, productID uuid.UUID, quantity, price, subtotal decimal.Decimal) (*DocumentItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &DocumentItem{
		ID:         uuid.New(),
		DocumentID: documentID,
		ProductID:  productID,
		Quantity:   quantity,
		Price:      price,
		Subtotal:   subtotal,
		CreatedAt:  time.Now(),
	}, nil
}

// Document is the trade document aggregate: quotations, orders, requests and
// invoices share one shape and one lifecycle. Type is immutable after creation.
type Document struct {
	shared.BaseAggregateRoot
	Number      string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Type        DocumentType    `gorm:"type:varchar(20);not null;index"`
	Date        time.Time       `gorm:"not null"`
	PartnerID   *uuid.UUID      `gorm:"type:uuid;index"`
	EmployeeID  *uuid.UUID      `gorm:"type:uuid;index"`
	Status      DocumentStatus  `gorm:"type:varchar(20);not null;default:'DRAFT'"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Items       []DocumentItem  `gorm:"foreignKey:DocumentID"`
}

// TableName returns the table name for GORM
func (Document) TableName() string {
	return "transactions"
}

// NewDocument creates a new trade document in the given status (DRAFT when empty)
func NewDocument(number string, docType DocumentType, date time.Time, partnerID, employeeID *uuid.UUID, status DocumentStatus, totalAmount decimal.Decimal) (*Document, error) {
	if number == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Document number cannot be empty")
	}
	if !docType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Unknown document type: "+string(docType))
	}
	if status == "" {
		status = DocumentStatusDraft
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Unknown document status: "+string(status))
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &Document{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            number,
		Type:              docType,
		Date:              date,
		PartnerID:         partnerID,
		EmployeeID:        employeeID,
		Status:            status,
		TotalAmount:       totalAmount,
	}, nil
}

// AddItem attaches a validated line item to the document
func (d *Document) AddItem(productID uuid.UUID, quantity, price, subtotal decimal.Decimal) error {
	item, err := NewDocumentItem(d.ID, productID, quantity, price, subtotal)
	if err != nil {
		return err
	}
	d.Items = append(d.Items, *item)
	return nil
}

// ChangeStatus moves the document to the target status. Any status may follow
// any other; legality of the path is not enforced, only enum membership is.
func (d *Document) ChangeStatus(target DocumentStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown document status: "+string(target))
	}
	d.Status = target
	d.UpdatedAt = time.Now()
	return nil
}

// SetTotalAmount overwrites the header total
func (d *Document) SetTotalAmount(total decimal.Decimal) {
	d.TotalAmount = total
	d.UpdatedAt = time.Now()
}

// BecameCompleted reports whether this save transitioned the document into
// COMPLETED. The comparison against the immediately prior status is the only
// guard on stock posting: a document already COMPLETED posts nothing when
// saved again.
func (d *Document) BecameCompleted(prior DocumentStatus) bool {
	return prior != DocumentStatusCompleted && d.Status == DocumentStatusCompleted
}
