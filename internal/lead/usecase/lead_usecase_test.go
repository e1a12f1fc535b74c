package usecase

import (
	"errors"
	"fmt"
	"testing"

	"genesis-backend/internal/lead/domain"
	"genesis-backend/internal/lead/dto"
	statusdomain "genesis-backend/internal/status/domain"
)

type fakeLeadRepo struct {
	leads  map[string]*domain.Lead
	nextID int
}

func newFakeLeadRepo(leads ...*domain.Lead) *fakeLeadRepo {
	repo := &fakeLeadRepo{leads: map[string]*domain.Lead{}}
	for _, l := range leads {
		repo.leads[l.ID] = l
	}
	return repo
}

func (f *fakeLeadRepo) List() ([]*domain.Lead, error) {
	out := make([]*domain.Lead, 0, len(f.leads))
	for _, l := range f.leads {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLeadRepo) FindByID(id string) (*domain.Lead, error) {
	return f.leads[id], nil
}

func (f *fakeLeadRepo) CountByStatus(statusID string) (int64, error) {
	var n int64
	for _, l := range f.leads {
		if l.Status == statusID {
			n++
		}
	}
	return n, nil
}

func (f *fakeLeadRepo) Create(lead *domain.Lead) error {
	f.nextID++
	lead.ID = fmt.Sprintf("lead-%d", f.nextID)
	f.leads[lead.ID] = lead
	return nil
}

func (f *fakeLeadRepo) Patch(id string, fields map[string]interface{}) error {
	lead, ok := f.leads[id]
	if !ok {
		return errors.New("not found")
	}
	for k, v := range fields {
		switch k {
		case "status":
			lead.Status = v.(string)
		case "payment_status":
			switch pv := v.(type) {
			case domain.PaymentStatus:
				lead.PaymentStatus = pv
			case string:
				lead.PaymentStatus = domain.PaymentStatus(pv)
			}
		case "customer_id":
			switch cv := v.(type) {
			case nil:
				lead.CustomerID = nil
			case string:
				id := cv
				lead.CustomerID = &id
			}
		case "product":
			lead.Product = v.(string)
		case "value":
			lead.Value = v.(float64)
		case "notes":
			lead.Notes = v.(string)
		}
	}
	return nil
}

func (f *fakeLeadRepo) Delete(id string) error {
	delete(f.leads, id)
	return nil
}

type fakeStageRegistry struct {
	stages []*statusdomain.Status
}

func (f *fakeStageRegistry) List() ([]*statusdomain.Status, error) {
	return f.stages, nil
}

func (f *fakeStageRegistry) FindByID(id string) (*statusdomain.Status, error) {
	for _, s := range f.stages {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func pipelineOf(ids ...string) *fakeStageRegistry {
	reg := &fakeStageRegistry{}
	for i, id := range ids {
		reg.stages = append(reg.stages, &statusdomain.Status{ID: id, Name: id, Position: i})
	}
	return reg
}

func floatPtr(v float64) *float64 { return &v }

func TestLeadCreate(t *testing.T) {
	t.Run("requires product", func(t *testing.T) {
		uc := NewLeadUsecase(newFakeLeadRepo(), pipelineOf("new"), nil)
		_, err := uc.Create(&dto.CreateLeadRequest{Product: "  ", Value: floatPtr(100)})
		if !errors.Is(err, ErrProductRequired) {
			t.Errorf("expected ErrProductRequired, got %v", err)
		}
	})

	t.Run("rejects negative value", func(t *testing.T) {
		uc := NewLeadUsecase(newFakeLeadRepo(), pipelineOf("new"), nil)
		_, err := uc.Create(&dto.CreateLeadRequest{Product: "Plano X", Value: floatPtr(-1)})
		if !errors.Is(err, ErrNegativeValue) {
			t.Errorf("expected ErrNegativeValue, got %v", err)
		}
	})

	t.Run("blocked while no stages exist", func(t *testing.T) {
		uc := NewLeadUsecase(newFakeLeadRepo(), pipelineOf(), nil)
		_, err := uc.Create(&dto.CreateLeadRequest{Product: "Plano X", Value: floatPtr(100)})
		if !errors.Is(err, ErrNoStages) {
			t.Errorf("expected ErrNoStages, got %v", err)
		}
	})

	t.Run("defaults to the leftmost stage and pending payment", func(t *testing.T) {
		uc := NewLeadUsecase(newFakeLeadRepo(), pipelineOf("new", "contacted"), nil)
		lead, err := uc.Create(&dto.CreateLeadRequest{Product: "Plano X", Value: floatPtr(1000)})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if lead.Status != "new" {
			t.Errorf("status = %q, want new", lead.Status)
		}
		if lead.PaymentStatus != domain.PaymentPending {
			t.Errorf("payment_status = %q, want pending", lead.PaymentStatus)
		}
	})

	t.Run("rejects an unknown stage", func(t *testing.T) {
		uc := NewLeadUsecase(newFakeLeadRepo(), pipelineOf("new"), nil)
		_, err := uc.Create(&dto.CreateLeadRequest{Product: "Plano X", Value: floatPtr(100), Status: "vip"})
		if !errors.Is(err, ErrUnknownStatus) {
			t.Errorf("expected ErrUnknownStatus, got %v", err)
		}
	})

	t.Run("rejects an unknown payment status", func(t *testing.T) {
		uc := NewLeadUsecase(newFakeLeadRepo(), pipelineOf("new"), nil)
		_, err := uc.Create(&dto.CreateLeadRequest{Product: "Plano X", Value: floatPtr(100), PaymentStatus: "banana"})
		if !errors.Is(err, ErrBadPaymentStatus) {
			t.Errorf("expected ErrBadPaymentStatus, got %v", err)
		}
	})

	t.Run("treats an empty customer id as no customer", func(t *testing.T) {
		repo := newFakeLeadRepo()
		uc := NewLeadUsecase(repo, pipelineOf("new"), nil)
		empty := ""
		lead, err := uc.Create(&dto.CreateLeadRequest{Product: "Plano X", Value: floatPtr(100), CustomerID: &empty})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if lead.CustomerID != nil {
			t.Errorf("customer_id = %q, want nil", *lead.CustomerID)
		}
	})
}

func TestLeadStageChange(t *testing.T) {
	newLead := func(status string, payment domain.PaymentStatus) *domain.Lead {
		return &domain.Lead{ID: "l1", Product: "Plano X", Value: 1000, Status: status, PaymentStatus: payment}
	}

	t.Run("closing marks the deal paid", func(t *testing.T) {
		repo := newFakeLeadRepo(newLead("new", domain.PaymentPending))
		uc := NewLeadUsecase(repo, pipelineOf("new", "contacted", "closed"), nil)

		lead, err := uc.ChangeStatus("l1", "closed")
		if err != nil {
			t.Fatalf("ChangeStatus: %v", err)
		}
		if lead.Status != "closed" {
			t.Errorf("status = %q, want closed", lead.Status)
		}
		if lead.PaymentStatus != domain.PaymentPaid {
			t.Errorf("payment_status = %q, want paid", lead.PaymentStatus)
		}
	})

	t.Run("closing an already paid deal leaves it paid", func(t *testing.T) {
		repo := newFakeLeadRepo(newLead("waiting_payment", domain.PaymentPaid))
		uc := NewLeadUsecase(repo, pipelineOf("waiting_payment", "closed"), nil)

		lead, err := uc.ChangeStatus("l1", "closed")
		if err != nil {
			t.Fatalf("ChangeStatus: %v", err)
		}
		if lead.PaymentStatus != domain.PaymentPaid {
			t.Errorf("payment_status = %q, want paid", lead.PaymentStatus)
		}
	})

	t.Run("moving anywhere else touches only the status", func(t *testing.T) {
		repo := newFakeLeadRepo(newLead("new", domain.PaymentPending))
		uc := NewLeadUsecase(repo, pipelineOf("new", "contacted", "closed"), nil)

		lead, err := uc.ChangeStatus("l1", "contacted")
		if err != nil {
			t.Fatalf("ChangeStatus: %v", err)
		}
		if lead.Status != "contacted" {
			t.Errorf("status = %q, want contacted", lead.Status)
		}
		if lead.PaymentStatus != domain.PaymentPending {
			t.Errorf("payment_status = %q, want pending", lead.PaymentStatus)
		}
	})

	t.Run("rejects an unknown destination", func(t *testing.T) {
		repo := newFakeLeadRepo(newLead("new", domain.PaymentPending))
		uc := NewLeadUsecase(repo, pipelineOf("new"), nil)

		if _, err := uc.ChangeStatus("l1", "vip"); !errors.Is(err, ErrUnknownStatus) {
			t.Errorf("expected ErrUnknownStatus, got %v", err)
		}
	})

	t.Run("form edits apply the same closing rule", func(t *testing.T) {
		repo := newFakeLeadRepo(newLead("new", domain.PaymentPartial))
		uc := NewLeadUsecase(repo, pipelineOf("new", "closed"), nil)

		status := "closed"
		notes := "fechado na reunião"
		lead, err := uc.Update("l1", &dto.UpdateLeadRequest{Status: &status, Notes: &notes})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if lead.PaymentStatus != domain.PaymentPaid {
			t.Errorf("payment_status = %q, want paid", lead.PaymentStatus)
		}
		if lead.Notes != notes {
			t.Errorf("notes not patched")
		}
	})
}

func TestLeadUpdate(t *testing.T) {
	t.Run("rejects an unknown payment status", func(t *testing.T) {
		repo := newFakeLeadRepo(&domain.Lead{ID: "l1", Product: "Plano X", Status: "new", PaymentStatus: domain.PaymentPending})
		uc := NewLeadUsecase(repo, pipelineOf("new"), nil)

		bad := "banana"
		if _, err := uc.Update("l1", &dto.UpdateLeadRequest{PaymentStatus: &bad}); !errors.Is(err, ErrBadPaymentStatus) {
			t.Errorf("expected ErrBadPaymentStatus, got %v", err)
		}
		if repo.leads["l1"].PaymentStatus != domain.PaymentPending {
			t.Errorf("payment_status = %q, the rejected value leaked through", repo.leads["l1"].PaymentStatus)
		}
	})

	t.Run("an empty customer id detaches the lead", func(t *testing.T) {
		customerID := "c1"
		repo := newFakeLeadRepo(&domain.Lead{ID: "l1", Product: "Plano X", Status: "new", CustomerID: &customerID})
		uc := NewLeadUsecase(repo, pipelineOf("new"), nil)

		empty := ""
		lead, err := uc.Update("l1", &dto.UpdateLeadRequest{CustomerID: &empty})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if lead.CustomerID != nil {
			t.Errorf("customer_id = %q, want nil", *lead.CustomerID)
		}
	})

	t.Run("a non-empty customer id relinks the lead", func(t *testing.T) {
		repo := newFakeLeadRepo(&domain.Lead{ID: "l1", Product: "Plano X", Status: "new"})
		uc := NewLeadUsecase(repo, pipelineOf("new"), nil)

		customerID := "c2"
		lead, err := uc.Update("l1", &dto.UpdateLeadRequest{CustomerID: &customerID})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if lead.CustomerID == nil || *lead.CustomerID != "c2" {
			t.Errorf("customer_id = %v, want c2", lead.CustomerID)
		}
	})
}

func TestLeadDelete(t *testing.T) {
	repo := newFakeLeadRepo(&domain.Lead{ID: "l1", Product: "Plano X"})
	uc := NewLeadUsecase(repo, pipelineOf("new"), nil)

	if err := uc.Delete("l1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := uc.Delete("l1"); !errors.Is(err, ErrLeadNotFound) {
		t.Errorf("expected ErrLeadNotFound, got %v", err)
	}
}

type recordedActivity struct {
	activityType string
	metadata     map[string]interface{}
}

type fakeActivityLog struct {
	entries []recordedActivity
}

func (f *fakeActivityLog) Record(activityType, description string, leadID, customerID *string, metadata map[string]interface{}) error {
	f.entries = append(f.entries, recordedActivity{activityType: activityType, metadata: metadata})
	return nil
}

func TestLeadActivityRecording(t *testing.T) {
	repo := newFakeLeadRepo()
	uc := NewLeadUsecase(repo, pipelineOf("new", "closed"), nil)
	log := &fakeActivityLog{}
	uc.SetActivityLog(log)

	lead, err := uc.Create(&dto.CreateLeadRequest{Product: "Plano X", Value: floatPtr(500)})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := uc.ChangeStatus(lead.ID, "closed"); err != nil {
		t.Fatalf("ChangeStatus: %v", err)
	}

	if len(log.entries) != 2 {
		t.Fatalf("recorded %d activities, want 2", len(log.entries))
	}
	if log.entries[0].activityType != "lead_created" {
		t.Errorf("first activity %q, want lead_created", log.entries[0].activityType)
	}
	if log.entries[1].activityType != "status_changed" {
		t.Errorf("second activity %q, want status_changed", log.entries[1].activityType)
	}
	if from, to := log.entries[1].metadata["from"], log.entries[1].metadata["to"]; from != "new" || to != "closed" {
		t.Errorf("transition metadata %v -> %v, want new -> closed", from, to)
	}
}
