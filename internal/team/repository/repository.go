package repository

import "genesis-backend/internal/team/domain"

// TeamRepository defines the interface for team member persistence
type TeamRepository interface {
	// List returns all team members, oldest first
	List() ([]*domain.TeamMember, error)

	// FindByID finds a member by id, nil if absent
	FindByID(id string) (*domain.TeamMember, error)

	// Create inserts a new member
	Create(member *domain.TeamMember) error

	// Update saves a modified member
	Update(member *domain.TeamMember) error

	// Delete removes a member
	Delete(id string) error
}
