package usecase

import (
	"genesis-backend/internal/lead/domain"
	"genesis-backend/internal/lead/dto"
	statusdomain "genesis-backend/internal/status/domain"
)

// LeadUsecase defines the business operations on leads. Every path that
// can change a lead's pipeline stage funnels through the same policy, so
// the closed-implies-paid rule holds regardless of entry point.
type LeadUsecase interface {
	// List returns all leads with their customer joined, newest first
	List() ([]*domain.Lead, error)

	// GetByID returns a single lead with its customer joined
	GetByID(id string) (*domain.Lead, error)

	// Create validates and inserts a new lead
	Create(req *dto.CreateLeadRequest) (*domain.Lead, error)

	// Update applies a partial patch and returns the updated lead
	Update(id string, req *dto.UpdateLeadRequest) (*domain.Lead, error)

	// ChangeStatus moves a lead to another stage
	ChangeStatus(id, statusID string) (*domain.Lead, error)

	// Delete removes a lead unconditionally
	Delete(id string) error

	// SetActivityLog wires the optional activity timeline
	SetActivityLog(log ActivityLog)
}

// StageRegistry is the subset of the stage repository the lead usecase
// needs to validate status references.
type StageRegistry interface {
	List() ([]*statusdomain.Status, error)
	FindByID(id string) (*statusdomain.Status, error)
}

// ActivityLog records timeline entries for lead events. Optional; a nil
// log disables recording.
type ActivityLog interface {
	Record(activityType, description string, leadID, customerID *string, metadata map[string]interface{}) error
}
