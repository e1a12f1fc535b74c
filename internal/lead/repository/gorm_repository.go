package repository

import (
	"time"

	"genesis-backend/internal/lead/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormLeadRepository implements LeadRepository using GORM
type gormLeadRepository struct {
	db *gorm.DB
}

// NewGormLeadRepository creates a new GORM-based LeadRepository
func NewGormLeadRepository(db *gorm.DB) LeadRepository {
	return &gormLeadRepository{db: db}
}

func (r *gormLeadRepository) List() ([]*domain.Lead, error) {
	var leads []*domain.Lead
	err := r.db.Preload("Customer").Order("created_at DESC").Find(&leads).Error
	if err != nil {
		return nil, err
	}

	for _, lead := range leads {
		if lead.Tags == nil {
			lead.Tags = domain.StringArray{}
		}
	}

	return leads, nil
}

func (r *gormLeadRepository) FindByID(id string) (*domain.Lead, error) {
	var lead domain.Lead
	err := r.db.Preload("Customer").Where("id = ?", id).First(&lead).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	if lead.Tags == nil {
		lead.Tags = domain.StringArray{}
	}
	return &lead, nil
}

func (r *gormLeadRepository) CountByStatus(statusID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Lead{}).Where("status = ?", statusID).Count(&count).Error
	return count, err
}

func (r *gormLeadRepository) Create(lead *domain.Lead) error {
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	if lead.Tags == nil {
		lead.Tags = domain.StringArray{}
	}
	lead.CreatedAt = time.Now()
	lead.UpdatedAt = time.Now()
	return r.db.Create(lead).Error
}

func (r *gormLeadRepository) Patch(id string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	return r.db.Model(&domain.Lead{}).Where("id = ?", id).Updates(fields).Error
}

func (r *gormLeadRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Lead{}).Error
}
