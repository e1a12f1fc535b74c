package usecase

import (
	"errors"
	"strings"

	"genesis-backend/internal/status/domain"
	"genesis-backend/internal/status/repository"
	"genesis-backend/pkg/realtime"
)

var (
	ErrNameRequired   = errors.New("status name is required")
	ErrNameTaken      = errors.New("status name already in use")
	ErrStatusNotFound = errors.New("status not found")
	ErrStatusInUse    = errors.New("status is referenced by leads")
	ErrBadOrdering    = errors.New("ordering must list every status exactly once")
)

// defaultStages is the pipeline seeded into an empty registry.
var defaultStages = []domain.Status{
	{ID: "new", Name: "Novo", Color: "bg-info"},
	{ID: "contacted", Name: "Contato", Color: "bg-primary"},
	{ID: "proposal", Name: "Proposta", Color: "bg-accent"},
	{ID: "negotiation", Name: "Negociação", Color: "bg-warning"},
	{ID: "waiting_payment", Name: "Pagamento", Color: "bg-orange-500"},
	{ID: "closed", Name: "Concluído", Color: "bg-success"},
	{ID: "lost", Name: "Perdido", Color: "bg-destructive"},
}

// statusUsecase implements StatusUsecase
type statusUsecase struct {
	statusRepo repository.StatusRepository
	leads      LeadCounter
	events     realtime.Publisher
}

// NewStatusUsecase creates a new instance of statusUsecase
func NewStatusUsecase(statusRepo repository.StatusRepository, leads LeadCounter, events realtime.Publisher) StatusUsecase {
	return &statusUsecase{
		statusRepo: statusRepo,
		leads:      leads,
		events:     events,
	}
}

func (u *statusUsecase) List() ([]*domain.Status, error) {
	return u.statusRepo.List()
}

func (u *statusUsecase) Create(name, color string) (*domain.Status, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	existing, err := u.statusRepo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNameTaken
	}

	id := domain.SlugID(name)
	if byID, err := u.statusRepo.FindByID(id); err != nil {
		return nil, err
	} else if byID != nil {
		return nil, ErrNameTaken
	}

	count, err := u.statusRepo.Count()
	if err != nil {
		return nil, err
	}

	if color == "" {
		color = domain.DefaultColor
	}

	status := &domain.Status{
		ID:       id,
		Name:     name,
		Color:    color,
		Position: int(count),
	}

	if err := u.statusRepo.Create(status); err != nil {
		return nil, err
	}

	u.publish(realtime.ActionCreated, status.ID)
	return status, nil
}

func (u *statusUsecase) Update(id string, updates StatusUpdate) (*domain.Status, error) {
	status, err := u.statusRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, ErrStatusNotFound
	}

	if updates.Name != nil {
		name := strings.TrimSpace(*updates.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		if !strings.EqualFold(name, status.Name) {
			existing, err := u.statusRepo.FindByName(name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != status.ID {
				return nil, ErrNameTaken
			}
		}
		status.Name = name
	}
	if updates.Color != nil && *updates.Color != "" {
		status.Color = *updates.Color
	}
	if updates.Position != nil {
		status.Position = *updates.Position
	}

	if err := u.statusRepo.Update(status); err != nil {
		return nil, err
	}

	u.publish(realtime.ActionUpdated, status.ID)
	return status, nil
}

func (u *statusUsecase) Delete(id string) error {
	status, err := u.statusRepo.FindByID(id)
	if err != nil {
		return err
	}
	if status == nil {
		return ErrStatusNotFound
	}

	referencing, err := u.leads.CountByStatus(id)
	if err != nil {
		return err
	}
	if referencing > 0 {
		return ErrStatusInUse
	}

	if err := u.statusRepo.Delete(id); err != nil {
		return err
	}

	u.publish(realtime.ActionDeleted, id)
	return nil
}

func (u *statusUsecase) Reorder(orderedIDs []string) error {
	statuses, err := u.statusRepo.List()
	if err != nil {
		return err
	}

	// Positions stay dense and unique only if the submitted order is an
	// exact permutation of the registry
	if len(orderedIDs) != len(statuses) {
		return ErrBadOrdering
	}
	known := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		known[s.ID] = true
	}
	seen := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if !known[id] {
			return ErrStatusNotFound
		}
		if seen[id] {
			return ErrBadOrdering
		}
		seen[id] = true
	}

	if err := u.statusRepo.Reorder(orderedIDs); err != nil {
		return err
	}

	u.publish(realtime.ActionUpdated, "")
	return nil
}

func (u *statusUsecase) EnsureDefaults() error {
	count, err := u.statusRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i, stage := range defaultStages {
		s := stage
		s.Position = i
		if err := u.statusRepo.Create(&s); err != nil {
			return err
		}
	}
	return nil
}

func (u *statusUsecase) publish(action realtime.Action, id string) {
	if u.events != nil {
		u.events.Publish(domain.Status{}.TableName(), action, id, nil)
	}
}
