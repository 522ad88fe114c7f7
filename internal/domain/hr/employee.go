package hr

import (
	"time"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EmployeeStatus represents the employment status
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "ACTIVE"
	EmployeeStatusInactive EmployeeStatus = "INACTIVE"
)

// IsValid checks if the status is a valid EmployeeStatus
func (s EmployeeStatus) IsValid() bool {
	return s == EmployeeStatusActive || s == EmployeeStatusInactive
}

// Employee represents a staff member
type Employee struct {
	shared.BaseEntity
	Name       string          `gorm:"type:varchar(200);not null"`
	Position   string          `gorm:"type:varchar(100)"`
	Department string          `gorm:"type:varchar(100)"`
	JoinDate   time.Time       `gorm:"not null"`
	Salary     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status     EmployeeStatus  `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

// NewEmployee creates a new employee
func NewEmployee(name, position, department string, joinDate time.Time, salary decimal.Decimal) (*Employee, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Employee name cannot be empty")
	}
	if salary.IsNegative() {
		return nil, shared.NewDomainError("INVALID_SALARY", "Salary cannot be negative")
	}
	if joinDate.IsZero() {
		joinDate = time.Now()
	}

	return &Employee{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Position:   position,
		Department: department,
		JoinDate:   joinDate,
		Salary:     salary,
		Status:     EmployeeStatusActive,
	}, nil
}
