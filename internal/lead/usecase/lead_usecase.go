package usecase

import (
	"errors"
	"fmt"
	"strings"

	"genesis-backend/internal/lead/domain"
	"genesis-backend/internal/lead/dto"
	"genesis-backend/internal/lead/repository"
	"genesis-backend/pkg/realtime"

	"github.com/sirupsen/logrus"
)

var (
	ErrProductRequired  = errors.New("lead product is required")
	ErrNegativeValue    = errors.New("lead value must be non-negative")
	ErrLeadNotFound     = errors.New("lead not found")
	ErrUnknownStatus    = errors.New("status does not exist")
	ErrNoStages         = errors.New("no pipeline stages defined")
	ErrBadPaymentStatus = errors.New("unknown payment status")
)

// leadUsecase implements LeadUsecase
type leadUsecase struct {
	leadRepo   repository.LeadRepository
	stages     StageRegistry
	activities ActivityLog
	events     realtime.Publisher
}

// NewLeadUsecase creates a new instance of leadUsecase
func NewLeadUsecase(leadRepo repository.LeadRepository, stages StageRegistry, events realtime.Publisher) LeadUsecase {
	return &leadUsecase{
		leadRepo: leadRepo,
		stages:   stages,
		events:   events,
	}
}

// SetActivityLog wires the optional activity timeline.
func (u *leadUsecase) SetActivityLog(log ActivityLog) {
	u.activities = log
}

func (u *leadUsecase) List() ([]*domain.Lead, error) {
	return u.leadRepo.List()
}

func (u *leadUsecase) GetByID(id string) (*domain.Lead, error) {
	lead, err := u.leadRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}
	return lead, nil
}

func (u *leadUsecase) Create(req *dto.CreateLeadRequest) (*domain.Lead, error) {
	product := strings.TrimSpace(req.Product)
	if product == "" {
		return nil, ErrProductRequired
	}
	if req.Value == nil || *req.Value < 0 {
		return nil, ErrNegativeValue
	}

	stages, err := u.stages.List()
	if err != nil {
		return nil, err
	}
	if len(stages) == 0 {
		return nil, ErrNoStages
	}

	status := req.Status
	if status == "" {
		// Default to the leftmost column
		status = stages[0].ID
	} else {
		stage, err := u.stages.FindByID(status)
		if err != nil {
			return nil, err
		}
		if stage == nil {
			return nil, ErrUnknownStatus
		}
	}

	paymentStatus := domain.PaymentStatus(req.PaymentStatus)
	if paymentStatus == "" {
		paymentStatus = domain.PaymentPending
	}
	if !paymentStatus.Valid() {
		return nil, ErrBadPaymentStatus
	}

	customerID := req.CustomerID
	if customerID != nil && *customerID == "" {
		customerID = nil
	}

	lead := &domain.Lead{
		CustomerID:    customerID,
		Product:       product,
		Value:         *req.Value,
		Status:        status,
		PaymentStatus: paymentStatus,
		DownPayment:   req.DownPayment,
		Installments:  req.Installments,
		LastContact:   req.LastContact,
		NextFollowUp:  req.NextFollowUp,
		AssignedTo:    req.AssignedTo,
		Notes:         req.Notes,
		Tags:          req.Tags,
	}

	if err := u.leadRepo.Create(lead); err != nil {
		return nil, err
	}

	u.record("lead_created", fmt.Sprintf("Lead %q criado", lead.Product), lead, nil)
	u.publish(realtime.ActionCreated, lead.ID)

	return u.leadRepo.FindByID(lead.ID)
}

func (u *leadUsecase) Update(id string, req *dto.UpdateLeadRequest) (*domain.Lead, error) {
	lead, err := u.GetByID(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}

	if req.Product != nil {
		product := strings.TrimSpace(*req.Product)
		if product == "" {
			return nil, ErrProductRequired
		}
		fields["product"] = product
	}
	if req.Value != nil {
		if *req.Value < 0 {
			return nil, ErrNegativeValue
		}
		fields["value"] = *req.Value
	}
	if req.CustomerID != nil {
		if *req.CustomerID == "" {
			// An empty string detaches the lead from its customer
			fields["customer_id"] = nil
		} else {
			fields["customer_id"] = *req.CustomerID
		}
	}
	if req.PaymentStatus != nil {
		paymentStatus := domain.PaymentStatus(*req.PaymentStatus)
		if !paymentStatus.Valid() {
			return nil, ErrBadPaymentStatus
		}
		fields["payment_status"] = paymentStatus
	}
	if req.DownPayment != nil {
		fields["down_payment"] = *req.DownPayment
	}
	if req.Installments != nil {
		fields["installments"] = *req.Installments
	}
	if req.LastContact != nil {
		fields["last_contact"] = *req.LastContact
	}
	if req.NextFollowUp != nil {
		fields["next_follow_up"] = *req.NextFollowUp
	}
	if req.AssignedTo != nil {
		fields["assigned_to"] = *req.AssignedTo
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if req.Tags != nil {
		fields["tags"] = domain.StringArray(req.Tags)
	}

	statusChanged := false
	if req.Status != nil && *req.Status != lead.Status {
		stage, err := u.stages.FindByID(*req.Status)
		if err != nil {
			return nil, err
		}
		if stage == nil {
			return nil, ErrUnknownStatus
		}
		for k, v := range stageChangeFields(lead, *req.Status) {
			fields[k] = v
		}
		statusChanged = true
	}

	if len(fields) > 0 {
		if err := u.leadRepo.Patch(id, fields); err != nil {
			return nil, err
		}
	}

	if statusChanged {
		u.record("status_changed",
			fmt.Sprintf("Lead %q movido de %s para %s", lead.Product, lead.Status, *req.Status),
			lead, map[string]interface{}{"from": lead.Status, "to": *req.Status})
	}
	u.publish(realtime.ActionUpdated, id)

	return u.leadRepo.FindByID(id)
}

func (u *leadUsecase) ChangeStatus(id, statusID string) (*domain.Lead, error) {
	status := statusID
	return u.Update(id, &dto.UpdateLeadRequest{Status: &status})
}

func (u *leadUsecase) Delete(id string) error {
	if _, err := u.GetByID(id); err != nil {
		return err
	}

	if err := u.leadRepo.Delete(id); err != nil {
		return err
	}

	u.publish(realtime.ActionDeleted, id)
	return nil
}

// stageChangeFields is the single policy for moving a lead between stages.
// Reaching the closed stage implies the deal is paid unless a paid state
// was already recorded; any other destination touches only the status.
func stageChangeFields(lead *domain.Lead, newStatus string) map[string]interface{} {
	fields := map[string]interface{}{"status": newStatus}
	if newStatus == domain.ClosedStage && lead.PaymentStatus != domain.PaymentPaid {
		fields["payment_status"] = domain.PaymentPaid
	}
	return fields
}

func (u *leadUsecase) record(activityType, description string, lead *domain.Lead, metadata map[string]interface{}) {
	if u.activities == nil {
		return
	}
	leadID := lead.ID
	if err := u.activities.Record(activityType, description, &leadID, lead.CustomerID, metadata); err != nil {
		logrus.WithError(err).Warn("failed to record lead activity")
	}
}

func (u *leadUsecase) publish(action realtime.Action, id string) {
	if u.events != nil {
		u.events.Publish("leads", action, id, nil)
	}
}
