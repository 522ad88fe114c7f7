package persistence

import (
	"github.com/bizdesk/backend/internal/domain/catalog"
	"github.com/bizdesk/backend/internal/domain/crm"
	"github.com/bizdesk/backend/internal/domain/finance"
	"github.com/bizdesk/backend/internal/domain/hr"
	"github.com/bizdesk/backend/internal/domain/inventory"
	"github.com/bizdesk/backend/internal/domain/org"
	"github.com/bizdesk/backend/internal/domain/partner"
	"github.com/bizdesk/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the full schema
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalog.Product{},
		&partner.Partner{},
		&hr.Employee{},
		&crm.Lead{},
		&trade.Document{},
		&trade.DocumentItem{},
		&inventory.StockMovement{},
		&finance.Account{},
		&finance.Journal{},
		&finance.JournalEntry{},
		&org.Company{},
		&org.Branch{},
		&org.AuditLog{},
	)
}
