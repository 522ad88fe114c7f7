package partner

import (
	"github.com/bizdesk/backend/internal/domain/shared"
)

// PartnerType distinguishes customers from suppliers
type PartnerType string

const (
	PartnerTypeCustomer PartnerType = "CUSTOMER"
	PartnerTypeSupplier PartnerType = "SUPPLIER"
)

// IsValid checks if the type is a valid PartnerType
func (t PartnerType) IsValid() bool {
	return t == PartnerTypeCustomer || t == PartnerTypeSupplier
}

// String returns the string representation of PartnerType
func (t PartnerType) String() string {
	return string(t)
}

// Partner represents a customer or supplier
type Partner struct {
	shared.BaseEntity
	Type    PartnerType `gorm:"type:varchar(20);not null;index"`
	Name    string      `gorm:"type:varchar(200);not null"`
	Email   string      `gorm:"type:varchar(200)"`
	Phone   string      `gorm:"type:varchar(50)"`
	Address string      `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (Partner) TableName() string {
	return "partners"
}

// NewPartner creates a new partner
func NewPartner(partnerType PartnerType, name, email, phone, address string) (*Partner, error) {
	if !partnerType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Unknown partner type: "+string(partnerType))
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Partner name cannot be empty")
	}

	return &Partner{
		BaseEntity: shared.NewBaseEntity(),
		Type:       partnerType,
		Name:       name,
		Email:      email,
		Phone:      phone,
		Address:    address,
	}, nil
}
