package org

import (
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Company is the owning legal entity
type Company struct {
	shared.BaseEntity
	Name    string `gorm:"type:varchar(200);not null"`
	Address string `gorm:"type:varchar(500)"`
	Phone   string `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (Company) TableName() string {
	return "companies"
}

// Branch is a physical location of a company
type Branch struct {
	shared.BaseEntity
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Address   string    `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (Branch) TableName() string {
	return "branches"
}

// AuditLog records a mutation for later inspection
type AuditLog struct {
	shared.BaseEntity
	Action   string `gorm:"type:varchar(50);not null"`
	Entity   string `gorm:"type:varchar(50);not null"`
	EntityID string `gorm:"type:varchar(50)"`
	Detail   string `gorm:"type:varchar(1000)"`
}

// TableName returns the table name for GORM
func (AuditLog) TableName() string {
	return "audit_logs"
}
