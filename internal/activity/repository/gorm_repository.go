package repository

import (
	"time"

	"genesis-backend/internal/activity/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormActivityRepository implements ActivityRepository using GORM
type gormActivityRepository struct {
	db *gorm.DB
}

// NewGormActivityRepository creates a new GORM-based ActivityRepository
func NewGormActivityRepository(db *gorm.DB) ActivityRepository {
	return &gormActivityRepository{db: db}
}

func (r *gormActivityRepository) List(limit int) ([]*domain.Activity, error) {
	var activities []*domain.Activity
	err := r.db.Order("created_at DESC").Limit(limit).Find(&activities).Error
	return activities, err
}

func (r *gormActivityRepository) Create(activity *domain.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	activity.CreatedAt = time.Now()
	return r.db.Create(activity).Error
}
