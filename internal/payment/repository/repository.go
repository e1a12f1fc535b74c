package repository

import (
	"time"

	"genesis-backend/internal/payment/domain"
)

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	// List returns all payments ordered by due date ascending
	List() ([]*domain.Payment, error)

	// FindByID finds a payment by id, nil if absent
	FindByID(id string) (*domain.Payment, error)

	// CountPending returns the number of pending payments
	CountPending() (int64, error)

	// Create inserts a new payment
	Create(payment *domain.Payment) error

	// Update saves a modified payment
	Update(payment *domain.Payment) error

	// Delete removes a payment
	Delete(id string) error

	// MarkOverdue flips pending payments past their due date to overdue
	// and returns how many rows changed
	MarkOverdue(now time.Time) (int64, error)
}
