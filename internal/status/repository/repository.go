package repository

import "genesis-backend/internal/status/domain"

// StatusRepository defines the interface for pipeline stage persistence
type StatusRepository interface {
	// List returns all stages ordered by position ascending
	List() ([]*domain.Status, error)

	// FindByID finds a stage by its identifier, nil if absent
	FindByID(id string) (*domain.Status, error)

	// FindByName finds a stage by display name, case-insensitive, nil if absent
	FindByName(name string) (*domain.Status, error)

	// Count returns the number of registered stages
	Count() (int64, error)

	// Create inserts a new stage
	Create(status *domain.Status) error

	// Update saves a modified stage
	Update(status *domain.Status) error

	// Delete removes a stage by identifier
	Delete(id string) error

	// Reorder renumbers all stages to the given identifier order in one
	// transaction
	Reorder(orderedIDs []string) error
}
