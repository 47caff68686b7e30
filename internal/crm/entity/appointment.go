package entity

import (
	"time"
)

// Appointment status
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusNoShow    = "no_show"
)

// Appointment a scheduled customer visit
type Appointment struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CustomerID    string     `json:"customer_id" gorm:"type:uuid;not null;index"`
	SalespersonID string     `json:"salesperson_id" gorm:"type:uuid;not null;index"`
	ShowroomID    string     `json:"showroom_id" gorm:"type:uuid;not null;index"`
	ScheduledAt   time.Time  `json:"scheduled_at" gorm:"not null;index"`
	DurationMins  int        `json:"duration_mins" gorm:"default:30"`
	Purpose       string     `json:"purpose" gorm:"size:200"`
	Status        string     `json:"status" gorm:"size:20;not null;default:scheduled"`
	Notes         string     `json:"notes" gorm:"type:text"`
	CreatedBy     string     `json:"created_by" gorm:"size:64"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at" gorm:"index"`
}

func (Appointment) TableName() string {
	return "crm_appointments"
}
