package usecase

import (
	"errors"
	"strings"

	"genesis-backend/internal/activity/domain"
	"genesis-backend/internal/activity/repository"
	"genesis-backend/pkg/realtime"
)

// defaultFeedSize caps the timeline returned to clients
const defaultFeedSize = 50

var ErrDescriptionRequired = errors.New("activity description is required")

// ActivityUsecase defines the business operations on the timeline
type ActivityUsecase interface {
	// List returns the most recent activities, newest first
	List() ([]*domain.Activity, error)

	// Create appends a new timeline entry
	Create(activity *domain.Activity) (*domain.Activity, error)

	// Record is the programmatic entry point used by other modules
	Record(activityType, description string, leadID, customerID *string, metadata map[string]interface{}) error
}

type activityUsecase struct {
	activityRepo repository.ActivityRepository
	events       realtime.Publisher
}

// NewActivityUsecase creates a new instance of activityUsecase
func NewActivityUsecase(activityRepo repository.ActivityRepository, events realtime.Publisher) ActivityUsecase {
	return &activityUsecase{
		activityRepo: activityRepo,
		events:       events,
	}
}

func (u *activityUsecase) List() ([]*domain.Activity, error) {
	return u.activityRepo.List(defaultFeedSize)
}

func (u *activityUsecase) Create(activity *domain.Activity) (*domain.Activity, error) {
	activity.Description = strings.TrimSpace(activity.Description)
	if activity.Description == "" {
		return nil, ErrDescriptionRequired
	}
	if activity.Type == "" {
		activity.Type = "note_added"
	}

	if err := u.activityRepo.Create(activity); err != nil {
		return nil, err
	}

	if u.events != nil {
		u.events.Publish("activities", realtime.ActionCreated, activity.ID, nil)
	}
	return activity, nil
}

func (u *activityUsecase) Record(activityType, description string, leadID, customerID *string, metadata map[string]interface{}) error {
	_, err := u.Create(&domain.Activity{
		Type:        activityType,
		Description: description,
		LeadID:      leadID,
		CustomerID:  customerID,
		Metadata:    metadata,
	})
	return err
}
