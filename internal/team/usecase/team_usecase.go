package usecase

import (
	"errors"
	"strings"

	"genesis-backend/internal/team/domain"
	"genesis-backend/internal/team/repository"
	"genesis-backend/pkg/realtime"
)

var (
	ErrNameRequired   = errors.New("team member name is required")
	ErrEmailRequired  = errors.New("team member email is required")
	ErrMemberNotFound = errors.New("team member not found")
)

// MemberUpdate is a partial patch for a team member
type MemberUpdate struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Role      *string `json:"role"`
	AvatarURL *string `json:"avatar_url"`
}

// TeamUsecase defines the business operations on team members
type TeamUsecase interface {
	List() ([]*domain.TeamMember, error)
	Create(member *domain.TeamMember) (*domain.TeamMember, error)
	Update(id string, updates MemberUpdate) (*domain.TeamMember, error)
	Delete(id string) error
}

type teamUsecase struct {
	teamRepo repository.TeamRepository
	events   realtime.Publisher
}

// NewTeamUsecase creates a new instance of teamUsecase
func NewTeamUsecase(teamRepo repository.TeamRepository, events realtime.Publisher) TeamUsecase {
	return &teamUsecase{
		teamRepo: teamRepo,
		events:   events,
	}
}

func (u *teamUsecase) List() ([]*domain.TeamMember, error) {
	return u.teamRepo.List()
}

func (u *teamUsecase) Create(member *domain.TeamMember) (*domain.TeamMember, error) {
	member.Name = strings.TrimSpace(member.Name)
	if member.Name == "" {
		return nil, ErrNameRequired
	}
	member.Email = strings.TrimSpace(member.Email)
	if member.Email == "" {
		return nil, ErrEmailRequired
	}

	if err := u.teamRepo.Create(member); err != nil {
		return nil, err
	}

	u.publish(realtime.ActionCreated, member.ID)
	return member, nil
}

func (u *teamUsecase) Update(id string, updates MemberUpdate) (*domain.TeamMember, error) {
	member, err := u.teamRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	if updates.Name != nil {
		name := strings.TrimSpace(*updates.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		member.Name = name
	}
	if updates.Email != nil {
		email := strings.TrimSpace(*updates.Email)
		if email == "" {
			return nil, ErrEmailRequired
		}
		member.Email = email
	}
	if updates.Phone != nil {
		member.Phone = *updates.Phone
	}
	if updates.Role != nil {
		member.Role = *updates.Role
	}
	if updates.AvatarURL != nil {
		member.AvatarURL = *updates.AvatarURL
	}

	if err := u.teamRepo.Update(member); err != nil {
		return nil, err
	}

	u.publish(realtime.ActionUpdated, member.ID)
	return member, nil
}

func (u *teamUsecase) Delete(id string) error {
	member, err := u.teamRepo.FindByID(id)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrMemberNotFound
	}

	if err := u.teamRepo.Delete(id); err != nil {
		return err
	}

	u.publish(realtime.ActionDeleted, id)
	return nil
}

func (u *teamUsecase) publish(action realtime.Action, id string) {
	if u.events != nil {
		u.events.Publish("team_members", action, id, nil)
	}
}
