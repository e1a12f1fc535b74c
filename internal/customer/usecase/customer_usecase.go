package usecase

import (
	"errors"
	"strings"

	"genesis-backend/internal/customer/domain"
	"genesis-backend/internal/customer/repository"
	"genesis-backend/pkg/realtime"
)

var (
	ErrNameRequired     = errors.New("customer name is required")
	ErrCustomerNotFound = errors.New("customer not found")
)

// CustomerUpdate is a partial patch for a customer
type CustomerUpdate struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Company   *string `json:"company"`
	AvatarURL *string `json:"avatar_url"`
	Source    *string `json:"source"`
	Notes     *string `json:"notes"`
}

// CustomerUsecase defines the business operations on customers
type CustomerUsecase interface {
	List() ([]*domain.Customer, error)
	GetByID(id string) (*domain.Customer, error)
	Create(customer *domain.Customer) (*domain.Customer, error)
	Update(id string, updates CustomerUpdate) (*domain.Customer, error)
	Delete(id string) error
}

type customerUsecase struct {
	customerRepo repository.CustomerRepository
	events       realtime.Publisher
}

// NewCustomerUsecase creates a new instance of customerUsecase
func NewCustomerUsecase(customerRepo repository.CustomerRepository, events realtime.Publisher) CustomerUsecase {
	return &customerUsecase{
		customerRepo: customerRepo,
		events:       events,
	}
}

func (u *customerUsecase) List() ([]*domain.Customer, error) {
	return u.customerRepo.List()
}

func (u *customerUsecase) GetByID(id string) (*domain.Customer, error) {
	customer, err := u.customerRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (u *customerUsecase) Create(customer *domain.Customer) (*domain.Customer, error) {
	customer.Name = strings.TrimSpace(customer.Name)
	if customer.Name == "" {
		return nil, ErrNameRequired
	}

	if err := u.customerRepo.Create(customer); err != nil {
		return nil, err
	}

	u.publish(realtime.ActionCreated, customer.ID)
	return customer, nil
}

func (u *customerUsecase) Update(id string, updates CustomerUpdate) (*domain.Customer, error) {
	customer, err := u.GetByID(id)
	if err != nil {
		return nil, err
	}

	if updates.Name != nil {
		name := strings.TrimSpace(*updates.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		customer.Name = name
	}
	if updates.Email != nil {
		customer.Email = *updates.Email
	}
	if updates.Phone != nil {
		customer.Phone = *updates.Phone
	}
	if updates.Company != nil {
		customer.Company = *updates.Company
	}
	if updates.AvatarURL != nil {
		customer.AvatarURL = *updates.AvatarURL
	}
	if updates.Source != nil {
		customer.Source = *updates.Source
	}
	if updates.Notes != nil {
		customer.Notes = *updates.Notes
	}

	if err := u.customerRepo.Update(customer); err != nil {
		return nil, err
	}

	u.publish(realtime.ActionUpdated, customer.ID)
	return customer, nil
}

func (u *customerUsecase) Delete(id string) error {
	if _, err := u.GetByID(id); err != nil {
		return err
	}

	if err := u.customerRepo.Delete(id); err != nil {
		return err
	}

	u.publish(realtime.ActionDeleted, id)
	return nil
}

func (u *customerUsecase) publish(action realtime.Action, id string) {
	if u.events != nil {
		u.events.Publish("customers", action, id, nil)
	}
}
