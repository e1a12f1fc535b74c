package repository

import (
	"strings"
	"time"

	"genesis-backend/internal/status/domain"

	"gorm.io/gorm"
)

// gormStatusRepository implements StatusRepository using GORM
type gormStatusRepository struct {
	db *gorm.DB
}

// NewGormStatusRepository creates a new GORM-based StatusRepository
func NewGormStatusRepository(db *gorm.DB) StatusRepository {
	return &gormStatusRepository{db: db}
}

func (r *gormStatusRepository) List() ([]*domain.Status, error) {
	var statuses []*domain.Status
	err := r.db.Order("position ASC").Find(&statuses).Error
	return statuses, err
}

func (r *gormStatusRepository) FindByID(id string) (*domain.Status, error) {
	var status domain.Status
	err := r.db.Where("id = ?", id).First(&status).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &status, nil
}

func (r *gormStatusRepository) FindByName(name string) (*domain.Status, error) {
	var status domain.Status
	err := r.db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&status).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &status, nil
}

func (r *gormStatusRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Status{}).Count(&count).Error
	return count, err
}

func (r *gormStatusRepository) Create(status *domain.Status) error {
	status.CreatedAt = time.Now()
	status.UpdatedAt = time.Now()
	return r.db.Create(status).Error
}

func (r *gormStatusRepository) Update(status *domain.Status) error {
	status.UpdatedAt = time.Now()
	return r.db.Save(status).Error
}

func (r *gormStatusRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Status{}).Error
}

func (r *gormStatusRepository) Reorder(orderedIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for position, id := range orderedIDs {
			err := tx.Model(&domain.Status{}).
				Where("id = ?", id).
				Updates(map[string]interface{}{
					"position":   position,
					"updated_at": time.Now(),
				}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
