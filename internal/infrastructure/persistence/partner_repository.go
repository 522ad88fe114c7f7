package persistence

import (
	"context"
	"errors"

	"github.com/bizdesk/backend/internal/domain/partner"
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPartnerRepository implements partner.PartnerRepository using GORM
type GormPartnerRepository struct {
	db *gorm.DB
}

// NewGormPartnerRepository creates a new GormPartnerRepository
func NewGormPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

// Create inserts a new partner
func (r *GormPartnerRepository) Create(ctx context.Context, p *partner.Partner) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// FindByID finds a partner by ID
func (r *GormPartnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	var p partner.Partner
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindAll lists all partners ordered by name
func (r *GormPartnerRepository) FindAll(ctx context.Context) ([]partner.Partner, error) {
	var partners []partner.Partner
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&partners).Error; err != nil {
		return nil, err
	}
	return partners, nil
}

var _ partner.PartnerRepository = (*GormPartnerRepository)(nil)
