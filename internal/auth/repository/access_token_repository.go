package repository

import (
	"time"

	"genesis-backend/internal/auth/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessTokenRepository defines the interface for access token lookups
type AccessTokenRepository interface {
	// FindActiveByToken finds an active token row by exact match, nil if
	// absent or inactive
	FindActiveByToken(token string) (*domain.AccessToken, error)

	// TouchLastUsed stamps the token's last_used_at
	TouchLastUsed(id string) error

	// Create inserts a new token row
	Create(token *domain.AccessToken) error
}

// gormAccessTokenRepository implements AccessTokenRepository using GORM
type gormAccessTokenRepository struct {
	db *gorm.DB
}

// NewGormAccessTokenRepository creates a new GORM-based AccessTokenRepository
func NewGormAccessTokenRepository(db *gorm.DB) AccessTokenRepository {
	return &gormAccessTokenRepository{db: db}
}

func (r *gormAccessTokenRepository) FindActiveByToken(token string) (*domain.AccessToken, error) {
	var row domain.AccessToken
	err := r.db.Where("token = ? AND is_active = ?", token, true).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *gormAccessTokenRepository) TouchLastUsed(id string) error {
	return r.db.Model(&domain.AccessToken{}).Where("id = ?", id).
		Update("last_used_at", time.Now()).Error
}

func (r *gormAccessTokenRepository) Create(token *domain.AccessToken) error {
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	token.CreatedAt = time.Now()
	return r.db.Create(token).Error
}
