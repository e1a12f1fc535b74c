package usecase

import (
	leaddomain "genesis-backend/internal/lead/domain"
	leadrepo "genesis-backend/internal/lead/repository"
	leaduc "genesis-backend/internal/lead/usecase"
	statusrepo "genesis-backend/internal/status/repository"
)

// MoveResult reports the outcome of a drop gesture.
type MoveResult struct {
	Moved bool             `json:"moved"`
	Lead  *leaddomain.Lead `json:"lead,omitempty"`
}

// BoardUsecase projects the pipeline board and applies drop gestures.
type BoardUsecase interface {
	// Get returns the board columns for the current registry and filter
	Get(filter Filter) ([]Column, error)

	// Move resolves a drop target and moves the lead if it lands on a
	// different stage. Dropping onto another lead resolves to that lead's
	// own column. Unknown targets and same-column drops are no-ops.
	Move(leadID, target string) (*MoveResult, error)
}

type boardUsecase struct {
	statusRepo  statusrepo.StatusRepository
	leadRepo    leadrepo.LeadRepository
	leadUsecase leaduc.LeadUsecase
}

// NewBoardUsecase creates a new instance of boardUsecase
func NewBoardUsecase(statusRepo statusrepo.StatusRepository, leadRepo leadrepo.LeadRepository, leadUsecase leaduc.LeadUsecase) BoardUsecase {
	return &boardUsecase{
		statusRepo:  statusRepo,
		leadRepo:    leadRepo,
		leadUsecase: leadUsecase,
	}
}

func (u *boardUsecase) Get(filter Filter) ([]Column, error) {
	stages, err := u.statusRepo.List()
	if err != nil {
		return nil, err
	}

	leads, err := u.leadRepo.List()
	if err != nil {
		return nil, err
	}

	return Build(stages, leads, filter), nil
}

func (u *boardUsecase) Move(leadID, target string) (*MoveResult, error) {
	lead, err := u.leadUsecase.GetByID(leadID)
	if err != nil {
		return nil, err
	}

	statusID, err := u.resolveTarget(target)
	if err != nil {
		return nil, err
	}

	if statusID == "" || statusID == lead.Status {
		return &MoveResult{Moved: false, Lead: lead}, nil
	}

	moved, err := u.leadUsecase.ChangeStatus(leadID, statusID)
	if err != nil {
		return nil, err
	}

	return &MoveResult{Moved: true, Lead: moved}, nil
}

// resolveTarget maps a drop target to a stage id. A drop released over a
// lead card resolves to that card's column; anything unknown resolves to
// the empty string (no-op).
func (u *boardUsecase) resolveTarget(target string) (string, error) {
	stage, err := u.statusRepo.FindByID(target)
	if err != nil {
		return "", err
	}
	if stage != nil {
		return stage.ID, nil
	}

	over, err := u.leadRepo.FindByID(target)
	if err != nil {
		return "", err
	}
	if over != nil {
		// The card's own column must still exist in the registry
		stage, err := u.statusRepo.FindByID(over.Status)
		if err != nil {
			return "", err
		}
		if stage != nil {
			return stage.ID, nil
		}
	}

	return "", nil
}
