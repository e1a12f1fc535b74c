package repository

import "genesis-backend/internal/task/domain"

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// List returns all tasks ordered by due date ascending
	List() ([]*domain.Task, error)

	// FindByID finds a task by its ID, nil if absent
	FindByID(id string) (*domain.Task, error)

	// CountPending returns the number of not-completed tasks
	CountPending() (int64, error)

	// Create creates a new task
	Create(task *domain.Task) error

	// Update updates an existing task
	Update(task *domain.Task) error

	// Delete deletes a task by ID
	Delete(id string) error
}
