package partner

import (
	"context"

	"github.com/bizdesk/backend/internal/domain/partner"
)

// PartnerService exposes partner queries to the HTTP layer
type PartnerService struct {
	partnerRepo partner.PartnerRepository
}

// NewPartnerService creates a new PartnerService
func NewPartnerService(partnerRepo partner.PartnerRepository) *PartnerService {
	return &PartnerService{partnerRepo: partnerRepo}
}

// List returns all partners ordered by name
func (s *PartnerService) List(ctx context.Context) ([]partner.Partner, error) {
	return s.partnerRepo.FindAll(ctx)
}
