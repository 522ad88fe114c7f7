package hr

import "context"

// EmployeeRepository defines the persistence contract for employees
type EmployeeRepository interface {
	// Create inserts a new employee
	Create(ctx context.Context, e *Employee) error

	// FindAll lists all employees ordered by name
	FindAll(ctx context.Context) ([]Employee, error)

	// Count returns the number of employees
	Count(ctx context.Context) (int64, error)
}
