package domain

import "time"

// PaymentType distinguishes lump sums from installment plans
type PaymentType string

const (
	PaymentTypeFull        PaymentType = "full"
	PaymentTypeDownPayment PaymentType = "down_payment"
	PaymentTypeInstallment PaymentType = "installment"
)

// Valid reports whether the value is one of the known payment types
func (t PaymentType) Valid() bool {
	switch t {
	case PaymentTypeFull, PaymentTypeDownPayment, PaymentTypeInstallment:
		return true
	}
	return false
}

// PaymentState tracks collection of a single payment
type PaymentState string

const (
	PaymentStatePending PaymentState = "pending"
	PaymentStatePaid    PaymentState = "paid"
	PaymentStateOverdue PaymentState = "overdue"
)

// Valid reports whether the value is one of the known payment states
func (s PaymentState) Valid() bool {
	switch s {
	case PaymentStatePending, PaymentStatePaid, PaymentStateOverdue:
		return true
	}
	return false
}

// Payment is a financial installment or lump sum, optionally tied to a
// lead and/or customer
type Payment struct {
	ID                string       `json:"id" gorm:"primaryKey"`
	LeadID            *string      `json:"lead_id,omitempty" gorm:"index"`
	CustomerID        *string      `json:"customer_id,omitempty" gorm:"index"`
	Amount            float64      `json:"amount" gorm:"not null"`
	Type              PaymentType  `json:"type" gorm:"default:full"`
	InstallmentNumber *int         `json:"installment_number,omitempty"`
	DueDate           time.Time    `json:"due_date" gorm:"not null"`
	PaidAt            *time.Time   `json:"paid_at,omitempty"`
	Status            PaymentState `json:"status" gorm:"index;default:pending"`
	CreatedAt         time.Time    `json:"created_at"`
}
