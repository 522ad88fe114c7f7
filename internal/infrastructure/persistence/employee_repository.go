package persistence

import (
	"context"

	"github.com/bizdesk/backend/internal/domain/hr"
	"gorm.io/gorm"
)

// GormEmployeeRepository implements hr.EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// Create inserts a new employee
func (r *GormEmployeeRepository) Create(ctx context.Context, e *hr.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// FindAll lists all employees ordered by name
func (r *GormEmployeeRepository) FindAll(ctx context.Context) ([]hr.Employee, error) {
	var employees []hr.Employee
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// Count returns the number of employees
func (r *GormEmployeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&hr.Employee{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ hr.EmployeeRepository = (*GormEmployeeRepository)(nil)
