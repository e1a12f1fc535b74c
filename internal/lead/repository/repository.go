package repository

import "genesis-backend/internal/lead/domain"

// LeadRepository defines the interface for lead persistence
type LeadRepository interface {
	// List returns all leads with their customer joined, newest first
	List() ([]*domain.Lead, error)

	// FindByID finds a lead by id with its customer joined, nil if absent
	FindByID(id string) (*domain.Lead, error)

	// CountByStatus returns how many leads reference the given stage
	CountByStatus(statusID string) (int64, error)

	// Create inserts a new lead
	Create(lead *domain.Lead) error

	// Patch applies the given column updates in a single write
	Patch(id string, fields map[string]interface{}) error

	// Delete removes a lead unconditionally
	Delete(id string) error
}
