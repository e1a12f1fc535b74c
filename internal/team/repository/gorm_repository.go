package repository

import (
	"time"

	"genesis-backend/internal/team/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTeamRepository implements TeamRepository using GORM
type gormTeamRepository struct {
	db *gorm.DB
}

// NewGormTeamRepository creates a new GORM-based TeamRepository
func NewGormTeamRepository(db *gorm.DB) TeamRepository {
	return &gormTeamRepository{db: db}
}

func (r *gormTeamRepository) List() ([]*domain.TeamMember, error) {
	var members []*domain.TeamMember
	err := r.db.Order("created_at ASC").Find(&members).Error
	return members, err
}

func (r *gormTeamRepository) FindByID(id string) (*domain.TeamMember, error) {
	var member domain.TeamMember
	err := r.db.Where("id = ?", id).First(&member).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *gormTeamRepository) Create(member *domain.TeamMember) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	member.CreatedAt = time.Now()
	member.UpdatedAt = time.Now()
	return r.db.Create(member).Error
}

func (r *gormTeamRepository) Update(member *domain.TeamMember) error {
	member.UpdatedAt = time.Now()
	return r.db.Save(member).Error
}

func (r *gormTeamRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.TeamMember{}).Error
}
