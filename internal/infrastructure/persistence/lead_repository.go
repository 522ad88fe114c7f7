package persistence

import (
	"context"

	"github.com/bizdesk/backend/internal/domain/crm"
	"gorm.io/gorm"
)

// GormLeadRepository implements crm.LeadRepository using GORM
type GormLeadRepository struct {
	db *gorm.DB
}

// NewGormLeadRepository creates a new GormLeadRepository
func NewGormLeadRepository(db *gorm.DB) *GormLeadRepository {
	return &GormLeadRepository{db: db}
}

// Create inserts a new lead
func (r *GormLeadRepository) Create(ctx context.Context, l *crm.Lead) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// FindAll lists all leads, most recently created first
func (r *GormLeadRepository) FindAll(ctx context.Context) ([]crm.Lead, error) {
	var leads []crm.Lead
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

var _ crm.LeadRepository = (*GormLeadRepository)(nil)
