package repository

import (
	"time"

	"genesis-backend/internal/customer/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormCustomerRepository implements CustomerRepository using GORM
type gormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM-based CustomerRepository
func NewGormCustomerRepository(db *gorm.DB) CustomerRepository {
	return &gormCustomerRepository{db: db}
}

func (r *gormCustomerRepository) List() ([]*domain.Customer, error) {
	var customers []*domain.Customer
	err := r.db.Order("created_at DESC").Find(&customers).Error
	return customers, err
}

func (r *gormCustomerRepository) FindByID(id string) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.Where("id = ?", id).First(&customer).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r *gormCustomerRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Customer{}).Count(&count).Error
	return count, err
}

func (r *gormCustomerRepository) Create(customer *domain.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = time.Now()
	return r.db.Create(customer).Error
}

func (r *gormCustomerRepository) Update(customer *domain.Customer) error {
	customer.UpdatedAt = time.Now()
	return r.db.Save(customer).Error
}

func (r *gormCustomerRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Customer{}).Error
}
