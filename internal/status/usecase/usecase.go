package usecase

import "genesis-backend/internal/status/domain"

// StatusUpdate is a partial patch for a pipeline stage
type StatusUpdate struct {
	Name     *string `json:"name"`
	Color    *string `json:"color"`
	Position *int    `json:"position"`
}

// StatusUsecase defines the business operations on the pipeline stage
// registry
type StatusUsecase interface {
	// List returns all stages in board order
	List() ([]*domain.Status, error)

	// Create appends a new stage at the end of the board
	Create(name, color string) (*domain.Status, error)

	// Update merges the given fields into a stage; repositioning one stage
	// does not renumber the others
	Update(id string, updates StatusUpdate) (*domain.Status, error)

	// Delete removes a stage; fails while any lead still references it
	Delete(id string) error

	// Reorder renumbers the whole registry to the given order atomically
	Reorder(orderedIDs []string) error

	// EnsureDefaults seeds the standard pipeline when the registry is empty
	EnsureDefaults() error
}

// LeadCounter reports how many leads currently sit in a stage. Implemented
// by the lead repository.
type LeadCounter interface {
	CountByStatus(statusID string) (int64, error)
}
