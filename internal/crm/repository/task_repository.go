package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
	"gorm.io/gorm"
)

// TaskRepository follow-up task data access
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// FindAll lists tasks with optional filters
func (r *TaskRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Task, int64, error) {
	var items []entity.Task
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Task{})

	if assigneeID := filters["assignee_id"]; assigneeID != "" {
		query = query.Where("assignee_id = ?", assigneeID)
	}
	if customerID := filters["customer_id"]; customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if status := filters["status"]; status != "" {
		query = query.Where("status = ?", status)
	}
	if priority := filters["priority"]; priority != "" {
		query = query.Where("priority = ?", priority)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("due_date ASC NULLS LAST, created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

// FindByID looks a task up by primary key
func (r *TaskRepository) FindByID(ctx context.Context, id string) (*entity.Task, error) {
	var task entity.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

// Create inserts a task
func (r *TaskRepository) Create(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// Update saves a task
func (r *TaskRepository) Update(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

// Delete soft-deletes a task
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Task{}).Error
}

// FindOverdue lists open tasks past their due date for an assignee
func (r *TaskRepository) FindOverdue(ctx context.Context, assigneeID string, now time.Time) ([]entity.Task, error) {
	var items []entity.Task
	err := r.db.WithContext(ctx).
		Where("assignee_id = ? AND status IN ? AND due_date < ?",
			assigneeID, []string{entity.TaskStatusPending, entity.TaskStatusInProgress}, now).
		Order("due_date ASC").
		Find(&items).Error
	return items, err
}
