package usecase

import (
	"errors"
	"time"

	"genesis-backend/internal/payment/domain"
	"genesis-backend/internal/payment/repository"
	"genesis-backend/pkg/realtime"
)

var (
	ErrAmountInvalid   = errors.New("payment amount must be positive")
	ErrTypeInvalid     = errors.New("unknown payment type")
	ErrStatusInvalid   = errors.New("unknown payment status")
	ErrPaymentNotFound = errors.New("payment not found")
)

// PaymentUpdate is a partial patch for a payment
type PaymentUpdate struct {
	LeadID            *string    `json:"lead_id"`
	CustomerID        *string    `json:"customer_id"`
	Amount            *float64   `json:"amount"`
	Type              *string    `json:"type"`
	InstallmentNumber *int       `json:"installment_number"`
	DueDate           *time.Time `json:"due_date"`
	Status            *string    `json:"status"`
}

// PaymentUsecase defines the business operations on payments
type PaymentUsecase interface {
	List() ([]*domain.Payment, error)
	GetByID(id string) (*domain.Payment, error)
	Create(payment *domain.Payment) (*domain.Payment, error)
	Update(id string, updates PaymentUpdate) (*domain.Payment, error)
	Delete(id string) error

	// SweepOverdue marks pending payments past due as overdue
	SweepOverdue(now time.Time) (int64, error)
}

type paymentUsecase struct {
	paymentRepo repository.PaymentRepository
	events      realtime.Publisher
}

// NewPaymentUsecase creates a new instance of paymentUsecase
func NewPaymentUsecase(paymentRepo repository.PaymentRepository, events realtime.Publisher) PaymentUsecase {
	return &paymentUsecase{
		paymentRepo: paymentRepo,
		events:      events,
	}
}

func (u *paymentUsecase) List() ([]*domain.Payment, error) {
	return u.paymentRepo.List()
}

func (u *paymentUsecase) GetByID(id string) (*domain.Payment, error) {
	payment, err := u.paymentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

func (u *paymentUsecase) Create(payment *domain.Payment) (*domain.Payment, error) {
	if payment.Amount <= 0 {
		return nil, ErrAmountInvalid
	}

	if payment.Type == "" {
		payment.Type = domain.PaymentTypeFull
	}
	if !payment.Type.Valid() {
		return nil, ErrTypeInvalid
	}
	if payment.Status == "" {
		payment.Status = domain.PaymentStatePending
	}
	if !payment.Status.Valid() {
		return nil, ErrStatusInvalid
	}
	if payment.Status == domain.PaymentStatePaid && payment.PaidAt == nil {
		now := time.Now()
		payment.PaidAt = &now
	}

	if err := u.paymentRepo.Create(payment); err != nil {
		return nil, err
	}

	u.publish(realtime.ActionCreated, payment.ID)
	return payment, nil
}

func (u *paymentUsecase) Update(id string, updates PaymentUpdate) (*domain.Payment, error) {
	payment, err := u.GetByID(id)
	if err != nil {
		return nil, err
	}

	if updates.LeadID != nil {
		payment.LeadID = updates.LeadID
	}
	if updates.CustomerID != nil {
		payment.CustomerID = updates.CustomerID
	}
	if updates.Amount != nil {
		if *updates.Amount <= 0 {
			return nil, ErrAmountInvalid
		}
		payment.Amount = *updates.Amount
	}
	if updates.Type != nil {
		paymentType := domain.PaymentType(*updates.Type)
		if !paymentType.Valid() {
			return nil, ErrTypeInvalid
		}
		payment.Type = paymentType
	}
	if updates.InstallmentNumber != nil {
		payment.InstallmentNumber = updates.InstallmentNumber
	}
	if updates.DueDate != nil {
		payment.DueDate = *updates.DueDate
	}
	if updates.Status != nil {
		newStatus := domain.PaymentState(*updates.Status)
		if !newStatus.Valid() {
			return nil, ErrStatusInvalid
		}
		if newStatus == domain.PaymentStatePaid && payment.Status != domain.PaymentStatePaid {
			now := time.Now()
			payment.PaidAt = &now
		} else if newStatus != domain.PaymentStatePaid {
			payment.PaidAt = nil
		}
		payment.Status = newStatus
	}

	if err := u.paymentRepo.Update(payment); err != nil {
		return nil, err
	}

	u.publish(realtime.ActionUpdated, payment.ID)
	return payment, nil
}

func (u *paymentUsecase) Delete(id string) error {
	if _, err := u.GetByID(id); err != nil {
		return err
	}

	if err := u.paymentRepo.Delete(id); err != nil {
		return err
	}

	u.publish(realtime.ActionDeleted, id)
	return nil
}

func (u *paymentUsecase) SweepOverdue(now time.Time) (int64, error) {
	changed, err := u.paymentRepo.MarkOverdue(now)
	if err != nil {
		return 0, err
	}

	if changed > 0 {
		u.publish(realtime.ActionUpdated, "")
	}
	return changed, nil
}

func (u *paymentUsecase) publish(action realtime.Action, id string) {
	if u.events != nil {
		u.events.Publish("payments", action, id, nil)
	}
}
