package domain

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	customerdomain "genesis-backend/internal/customer/domain"
)

// PaymentStatus tracks money collected for a lead, independent of its
// pipeline stage.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

// Valid reports whether the value is one of the known payment states.
// The database schema enforces no enum, so this is the only check.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPartial, PaymentPaid, PaymentOverdue:
		return true
	}
	return false
}

// ClosedStage is the terminal pipeline stage identifier. Landing here
// marks the deal as paid unless a paid state was already recorded.
const ClosedStage = "closed"

// StringArray stores a JSON array in a text column
type StringArray []string

// Value implements driver.Valuer
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = []string{}
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
		*a = []string{}
		return nil
	}
	return json.Unmarshal(bytes, a)
}

// Lead represents a tracked sales opportunity
type Lead struct {
	ID            string                   `json:"id" gorm:"primaryKey"`
	CustomerID    *string                  `json:"customer_id,omitempty" gorm:"index"`
	Customer      *customerdomain.Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Product       string                   `json:"product" gorm:"not null"`
	Value         float64                  `json:"value" gorm:"not null;default:0"`
	Status        string                   `json:"status" gorm:"index;not null"`
	PaymentStatus PaymentStatus            `json:"payment_status" gorm:"default:pending"`
	DownPayment   *float64                 `json:"down_payment,omitempty"`
	Installments  *int                     `json:"installments,omitempty"`
	LastContact   *time.Time               `json:"last_contact,omitempty"`
	NextFollowUp  *time.Time               `json:"next_follow_up,omitempty"`
	AssignedTo    string                   `json:"assigned_to,omitempty"`
	Notes         string                   `json:"notes,omitempty"`
	Tags          StringArray              `json:"tags" gorm:"type:text"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}
