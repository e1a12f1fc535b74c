package domain

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Metadata stores an arbitrary JSON object in a text column
type Metadata map[string]interface{}

// Value implements driver.Valuer
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner
func (m *Metadata) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}
	if len(bytes) == 0 {
		*m = nil
		return nil
	}
	return json.Unmarshal(bytes, m)
}

// Activity is one entry of the CRM timeline (lead created, stage moved,
// payment received, ...)
type Activity struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	LeadID      *string   `json:"lead_id,omitempty" gorm:"index"`
	CustomerID  *string   `json:"customer_id,omitempty" gorm:"index"`
	Metadata    Metadata  `json:"metadata,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}
