package dto

import (
	"github.com/shopspring/decimal"
)

// TransactionItemRequest is one line item of a transaction payload
type TransactionItemRequest struct {
	ProductID string          `json:"product_id" binding:"required,uuid"`
	Quantity  decimal.Decimal `json:"qty" binding:"required"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CreateTransactionRequest is the body of POST /transactions. Enum fields are
// closed at the boundary; unknown values never reach the store.
type CreateTransactionRequest struct {
	Number      string                   `json:"number" binding:"required,max=50"`
	Type        string                   `json:"type" binding:"required,oneof=QUOTATION SO PO PR INVOICE_IN INVOICE_OUT"`
	Date        string                   `json:"date" binding:"omitempty"`
	PartnerID   *string                  `json:"partner_id" binding:"omitempty,uuid"`
	EmployeeID  *string                  `json:"employee_id" binding:"omitempty,uuid"`
	Status      string                   `json:"status" binding:"omitempty,oneof=DRAFT APPROVED REJECTED COMPLETED"`
	TotalAmount decimal.Decimal          `json:"total_amount"`
	Items       []TransactionItemRequest `json:"items" binding:"omitempty,dive"`
}

// UpdateTransactionRequest is the body of PUT /transactions/:id. Absent fields
// are left untouched; a present items array wholesale-replaces the stored set.
type UpdateTransactionRequest struct {
	Status      *string                   `json:"status" binding:"omitempty,oneof=DRAFT APPROVED REJECTED COMPLETED"`
	TotalAmount *decimal.Decimal          `json:"total_amount"`
	Items       *[]TransactionItemRequest `json:"items" binding:"omitempty,dive"`
}

// StockAdjustmentRequest is the body of POST /inventory/adjustments
type StockAdjustmentRequest struct {
	ProductID string          `json:"product_id" binding:"required,uuid"`
	Type      string          `json:"type" binding:"required,oneof=IN OUT ADJUSTMENT"`
	Quantity  decimal.Decimal `json:"qty" binding:"required"`
	Reference string          `json:"reference" binding:"omitempty,max=100"`
}

// TransactionTypeQuery filters GET /transactions by document type
type TransactionTypeQuery struct {
	Type string `form:"type" binding:"omitempty,oneof=QUOTATION SO PO PR INVOICE_IN INVOICE_OUT"`
}
