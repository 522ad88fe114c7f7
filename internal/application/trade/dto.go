package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentItemRequest is one line of a create or update request
type DocumentItemRequest struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	Price     decimal.Decimal
	Subtotal  decimal.Decimal
}

// CreateDocumentRequest carries the fields to create a trade document
type CreateDocumentRequest struct {
	Number      string
	Type        string
	Date        time.Time
	PartnerID   *uuid.UUID
	EmployeeID  *uuid.UUID
	Status      string
	TotalAmount decimal.Decimal
	Items       []DocumentItemRequest
}

// UpdateDocumentRequest carries a partial update. Nil fields are left alone;
// a non-nil Items slice wholesale-replaces the stored item set.
type UpdateDocumentRequest struct {
	Status      *string
	TotalAmount *decimal.Decimal
	Items       *[]DocumentItemRequest
}

// CreateDocumentResponse identifies the created document
type CreateDocumentResponse struct {
	ID     uuid.UUID `json:"id"`
	Number string    `json:"number"`
}
