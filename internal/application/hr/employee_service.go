package hr

import (
	"context"

	"github.com/bizdesk/backend/internal/domain/hr"
)

// EmployeeService exposes employee queries to the HTTP layer
type EmployeeService struct {
	employeeRepo hr.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo hr.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// List returns all employees ordered by name
func (s *EmployeeService) List(ctx context.Context) ([]hr.Employee, error) {
	return s.employeeRepo.FindAll(ctx)
}
