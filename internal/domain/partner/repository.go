package partner

import (
	"context"

	"github.com/google/uuid"
)

// PartnerRepository defines the persistence contract for partners
type PartnerRepository interface {
	// Create inserts a new partner
	Create(ctx context.Context, p *Partner) error

	// FindByID finds a partner by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Partner, error)

	// FindAll lists all partners ordered by name
	FindAll(ctx context.Context) ([]Partner, error)
}
