package crm

import (
	"context"

	"github.com/bizdesk/backend/internal/domain/crm"
)

// LeadService exposes CRM lead queries to the HTTP layer
type LeadService struct {
	leadRepo crm.LeadRepository
}

// NewLeadService creates a new LeadService
func NewLeadService(leadRepo crm.LeadRepository) *LeadService {
	return &LeadService{leadRepo: leadRepo}
}

// List returns all leads, most recently created first
func (s *LeadService) List(ctx context.Context) ([]crm.Lead, error) {
	return s.leadRepo.FindAll(ctx)
}
