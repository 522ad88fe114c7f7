package finance

import (
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType classifies chart-of-accounts entries
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// Account is a chart-of-accounts entry. The schema is carried for the
// bookkeeping surface; trade completion does not write journals.
type Account struct {
	shared.BaseEntity
	Code     string      `gorm:"type:varchar(20);not null;uniqueIndex"`
	Name     string      `gorm:"type:varchar(200);not null"`
	Type     AccountType `gorm:"type:varchar(20);not null"`
	ParentID *uuid.UUID  `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Account) TableName() string {
	return "coa"
}

// Journal is a bookkeeping batch header
type Journal struct {
	shared.BaseEntity
	Date        string `gorm:"type:varchar(20);not null"`
	Description string `gorm:"type:varchar(500)"`
	Reference   string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (Journal) TableName() string {
	return "journals"
}

// JournalEntry is one debit/credit line of a journal
type JournalEntry struct {
	shared.BaseEntity
	JournalID uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Debit     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Credit    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (JournalEntry) TableName() string {
	return "journal_entries"
}
