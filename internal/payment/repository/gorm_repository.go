package repository

import (
	"time"

	"genesis-backend/internal/payment/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormPaymentRepository implements PaymentRepository using GORM
type gormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GORM-based PaymentRepository
func NewGormPaymentRepository(db *gorm.DB) PaymentRepository {
	return &gormPaymentRepository{db: db}
}

func (r *gormPaymentRepository) List() ([]*domain.Payment, error) {
	var payments []*domain.Payment
	err := r.db.Order("due_date ASC").Find(&payments).Error
	return payments, err
}

func (r *gormPaymentRepository) FindByID(id string) (*domain.Payment, error) {
	var payment domain.Payment
	err := r.db.Where("id = ?", id).First(&payment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *gormPaymentRepository) CountPending() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Payment{}).Where("status = ?", domain.PaymentStatePending).Count(&count).Error
	return count, err
}

func (r *gormPaymentRepository) Create(payment *domain.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	payment.CreatedAt = time.Now()
	return r.db.Create(payment).Error
}

func (r *gormPaymentRepository) Update(payment *domain.Payment) error {
	return r.db.Save(payment).Error
}

func (r *gormPaymentRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Payment{}).Error
}

func (r *gormPaymentRepository) MarkOverdue(now time.Time) (int64, error) {
	result := r.db.Model(&domain.Payment{}).
		Where("status = ? AND due_date < ?", domain.PaymentStatePending, now).
		Update("status", domain.PaymentStateOverdue)
	return result.RowsAffected, result.Error
}
