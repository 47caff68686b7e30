package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/repository"
	"github.com/google/uuid"
)

// TaskService follow-up task management
type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// CreateTaskRequest new task payload
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	AssigneeID  string     `json:"assignee_id" binding:"required"`
	CustomerID  *string    `json:"customer_id"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

func (s *TaskService) Create(ctx context.Context, req *CreateTaskRequest, userID string) (*entity.Task, error) {
	priority := req.Priority
	if priority == "" {
		priority = entity.TaskPriorityMedium
	}

	task := &entity.Task{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		CustomerID:  req.CustomerID,
		Priority:    priority,
		Status:      entity.TaskStatusPending,
		DueDate:     req.DueDate,
		CreatedBy:   userID,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, id string) (*entity.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Task, int64, error) {
	return s.repo.FindAll(ctx, page, pageSize, filters)
}

// UpdateStatus moves a task through its lifecycle
func (s *TaskService) UpdateStatus(ctx context.Context, id, status string) (*entity.Task, error) {
	switch status {
	case entity.TaskStatusPending, entity.TaskStatusInProgress,
		entity.TaskStatusDone, entity.TaskStatusCancelled:
	default:
		return nil, fmt.Errorf("unknown task status %q", status)
	}

	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Status = status
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task status: %w", err)
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// GetOverdue lists open tasks past their due date for an assignee
func (s *TaskService) GetOverdue(ctx context.Context, assigneeID string) ([]entity.Task, error) {
	return s.repo.FindOverdue(ctx, assigneeID, time.Now())
}
