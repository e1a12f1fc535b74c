package domain

import "time"

// AccessToken is one row of the bearer-token table checked on login.
// Tokens are stored verbatim and matched exactly; deactivating a row is
// the only way to revoke it.
type AccessToken struct {
	ID         string     `json:"id" gorm:"primaryKey"`
	Name       string     `json:"name" gorm:"not null"`
	Token      string     `json:"-" gorm:"uniqueIndex;not null"`
	IsActive   bool       `json:"is_active" gorm:"default:true"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}
