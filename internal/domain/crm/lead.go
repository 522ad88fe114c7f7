package crm

import (
	"time"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// LeadStatus represents the pipeline stage of a lead
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "NEW"
	LeadStatusContacted LeadStatus = "CONTACTED"
	LeadStatusQualified LeadStatus = "QUALIFIED"
	LeadStatusProposal  LeadStatus = "PROPOSAL"
	LeadStatusWon       LeadStatus = "WON"
	LeadStatusLost      LeadStatus = "LOST"
)

// IsValid checks if the status is a valid LeadStatus
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified,
		LeadStatusProposal, LeadStatusWon, LeadStatusLost:
		return true
	}
	return false
}

// Lead represents a sales prospect in the CRM pipeline
type Lead struct {
	shared.BaseEntity
	Name         string          `gorm:"type:varchar(200);not null"`
	Company      string          `gorm:"type:varchar(200)"`
	Status       LeadStatus      `gorm:"type:varchar(20);not null;default:'NEW'"`
	Value        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	LastFollowUp *time.Time
}

// TableName returns the table name for GORM
func (Lead) TableName() string {
	return "leads"
}

// NewLead creates a new lead in the NEW stage
func NewLead(name, company string, value decimal.Decimal) (*Lead, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Lead name cannot be empty")
	}
	if value.IsNegative() {
		return nil, shared.NewDomainError("INVALID_VALUE", "Lead value cannot be negative")
	}

	return &Lead{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Company:    company,
		Status:     LeadStatusNew,
		Value:      value,
	}, nil
}
