package usecase

import (
	"errors"
	"strings"
	"time"

	"genesis-backend/internal/task/domain"
	"genesis-backend/internal/task/repository"
	"genesis-backend/pkg/realtime"
)

var (
	ErrTitleRequired = errors.New("task title is required")
	ErrTaskNotFound  = errors.New("task not found")
	ErrBadPriority   = errors.New("unknown task priority")
	ErrBadStatus     = errors.New("unknown task status")
)

// TaskUpdate is a partial patch for a task
type TaskUpdate struct {
	LeadID      *string    `json:"lead_id"`
	CustomerID  *string    `json:"customer_id"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
	AssignedTo  *string    `json:"assigned_to"`
}

// TaskUsecase defines the business operations on tasks
type TaskUsecase interface {
	List() ([]*domain.Task, error)
	GetByID(id string) (*domain.Task, error)
	Create(task *domain.Task) (*domain.Task, error)
	Update(id string, updates TaskUpdate) (*domain.Task, error)
	Delete(id string) error
}

type taskUsecase struct {
	taskRepo repository.TaskRepository
	events   realtime.Publisher
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository, events realtime.Publisher) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
		events:   events,
	}
}

func (u *taskUsecase) List() ([]*domain.Task, error) {
	return u.taskRepo.List()
}

func (u *taskUsecase) GetByID(id string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (u *taskUsecase) Create(task *domain.Task) (*domain.Task, error) {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return nil, ErrTitleRequired
	}

	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if !task.Priority.Valid() {
		return nil, ErrBadPriority
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusPending
	}
	if !task.Status.Valid() {
		return nil, ErrBadStatus
	}
	if task.Status == domain.TaskStatusCompleted && task.CompletedAt == nil {
		now := time.Now()
		task.CompletedAt = &now
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}

	u.publish(realtime.ActionCreated, task.ID)
	return task, nil
}

func (u *taskUsecase) Update(id string, updates TaskUpdate) (*domain.Task, error) {
	task, err := u.GetByID(id)
	if err != nil {
		return nil, err
	}

	if updates.LeadID != nil {
		task.LeadID = updates.LeadID
	}
	if updates.CustomerID != nil {
		task.CustomerID = updates.CustomerID
	}
	if updates.Title != nil {
		title := strings.TrimSpace(*updates.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		task.Title = title
	}
	if updates.Description != nil {
		task.Description = *updates.Description
	}
	if updates.DueDate != nil {
		task.DueDate = *updates.DueDate
	}
	if updates.Priority != nil {
		priority := domain.Priority(*updates.Priority)
		if !priority.Valid() {
			return nil, ErrBadPriority
		}
		task.Priority = priority
	}
	if updates.AssignedTo != nil {
		task.AssignedTo = *updates.AssignedTo
	}
	if updates.Status != nil {
		newStatus := domain.TaskStatus(*updates.Status)
		if !newStatus.Valid() {
			return nil, ErrBadStatus
		}
		// Completion is stamped once, reopening clears it
		if newStatus == domain.TaskStatusCompleted && task.Status != domain.TaskStatusCompleted {
			now := time.Now()
			task.CompletedAt = &now
		} else if newStatus != domain.TaskStatusCompleted {
			task.CompletedAt = nil
		}
		task.Status = newStatus
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}

	u.publish(realtime.ActionUpdated, task.ID)
	return task, nil
}

func (u *taskUsecase) Delete(id string) error {
	if _, err := u.GetByID(id); err != nil {
		return err
	}

	if err := u.taskRepo.Delete(id); err != nil {
		return err
	}

	u.publish(realtime.ActionDeleted, id)
	return nil
}

func (u *taskUsecase) publish(action realtime.Action, id string) {
	if u.events != nil {
		u.events.Publish("tasks", action, id, nil)
	}
}
