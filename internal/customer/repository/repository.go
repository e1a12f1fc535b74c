package repository

import "genesis-backend/internal/customer/domain"

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// List returns all customers, newest first
	List() ([]*domain.Customer, error)

	// FindByID finds a customer by id, nil if absent
	FindByID(id string) (*domain.Customer, error)

	// Count returns the number of customers
	Count() (int64, error)

	// Create inserts a new customer
	Create(customer *domain.Customer) error

	// Update saves a modified customer
	Update(customer *domain.Customer) error

	// Delete removes a customer; leads referencing it are left untouched
	Delete(id string) error
}
