package repository

import "genesis-backend/internal/activity/domain"

// ActivityRepository defines the interface for timeline persistence
type ActivityRepository interface {
	// List returns the most recent activities, newest first
	List(limit int) ([]*domain.Activity, error)

	// Create inserts a new activity
	Create(activity *domain.Activity) error
}
