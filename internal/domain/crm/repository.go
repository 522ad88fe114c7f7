package crm

import "context"

// LeadRepository defines the persistence contract for CRM leads
type LeadRepository interface {
	// Create inserts a new lead
	Create(ctx context.Context, l *Lead) error

	// FindAll lists all leads, most recently created first
	FindAll(ctx context.Context) ([]Lead, error)
}
