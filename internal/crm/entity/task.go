package entity

import (
	"time"
)

// Task status
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
	TaskStatusCancelled  = "cancelled"
)

// Task priority
const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

// Task a follow-up item assigned to a salesperson or manager
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string     `json:"title" gorm:"size:200;not null"`
	Description string     `json:"description" gorm:"type:text"`
	AssigneeID  string     `json:"assignee_id" gorm:"type:uuid;not null;index"`
	CustomerID  *string    `json:"customer_id" gorm:"type:uuid;index"`
	Priority    string     `json:"priority" gorm:"size:20;not null;default:medium"`
	Status      string     `json:"status" gorm:"size:20;not null;default:pending;index"`
	DueDate     *time.Time `json:"due_date"`
	CreatedBy   string     `json:"created_by" gorm:"size:64"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at" gorm:"index"`
}

func (Task) TableName() string {
	return "crm_tasks"
}
