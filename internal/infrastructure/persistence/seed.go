package persistence

import (
	"time"

	"github.com/bizdesk/backend/internal/domain/catalog"
	"github.com/bizdesk/backend/internal/domain/crm"
	"github.com/bizdesk/backend/internal/domain/finance"
	"github.com/bizdesk/backend/internal/domain/hr"
	"github.com/bizdesk/backend/internal/domain/partner"
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed loads a starter data set on first boot. It is a no-op when products
// already exist, so it is safe to run on every start.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&catalog.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		laptop, err := catalog.NewProduct("P001", "Laptop Pro 14", "Electronics", "Unit",
			decimal.NewFromInt(1200), decimal.NewFromInt(1500))
		if err != nil {
			return err
		}
		laptop.StockQty = decimal.NewFromInt(10)
		if err := tx.Create(laptop).Error; err != nil {
			return err
		}

		partners := []struct {
			partnerType partner.PartnerType
			name, email string
		}{
			{partner.PartnerTypeCustomer, "John Doe Corp", "john@example.com"},
			{partner.PartnerTypeSupplier, "Global Tech Ltd", "sales@globaltech.com"},
		}
		for _, p := range partners {
			np, err := partner.NewPartner(p.partnerType, p.name, p.email, "", "")
			if err != nil {
				return err
			}
			if err := tx.Create(np).Error; err != nil {
				return err
			}
		}

		accounts := []finance.Account{
			{BaseEntity: shared.NewBaseEntity(), Code: "1000", Name: "Cash", Type: finance.AccountTypeAsset},
			{BaseEntity: shared.NewBaseEntity(), Code: "4000", Name: "Sales Revenue", Type: finance.AccountTypeRevenue},
		}
		for i := range accounts {
			if err := tx.Create(&accounts[i]).Error; err != nil {
				return err
			}
		}

		leads := []struct {
			name, company string
			status        crm.LeadStatus
			value         int64
			followUp      string
		}{
			{"Alice Smith", "Tech Solutions", crm.LeadStatusQualified, 5000, "2024-02-20"},
			{"Bob Jones", "Creative Agency", crm.LeadStatusNew, 2500, "2024-02-22"},
			{"Charlie Brown", "Retail Hub", crm.LeadStatusProposal, 12000, "2024-02-18"},
		}
		for _, l := range leads {
			lead, err := crm.NewLead(l.name, l.company, decimal.NewFromInt(l.value))
			if err != nil {
				return err
			}
			lead.Status = l.status
			if t, err := time.Parse("2006-01-02", l.followUp); err == nil {
				lead.LastFollowUp = &t
			}
			if err := tx.Create(lead).Error; err != nil {
				return err
			}
		}

		employees := []struct {
			name, position, department, joined string
			salary                             int64
		}{
			{"Emma Wilson", "Senior Developer", "Engineering", "2023-01-15", 8500},
			{"Liam Johnson", "Product Manager", "Product", "2023-05-10", 7500},
		}
		for _, e := range employees {
			joined, _ := time.Parse("2006-01-02", e.joined)
			emp, err := hr.NewEmployee(e.name, e.position, e.department, joined, decimal.NewFromInt(e.salary))
			if err != nil {
				return err
			}
			if err := tx.Create(emp).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
