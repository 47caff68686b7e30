package entity

import (
	"time"
)

// User roles
const (
	RoleAdmin       = "admin"
	RoleManager     = "manager"
	RoleSalesperson = "salesperson"
)

// User status
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User CRM portal account (admin / floor manager / salesperson)
type User struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EmployeeCode string     `json:"employee_code" gorm:"size:50;not null;uniqueIndex"`
	Name         string     `json:"name" gorm:"size:200;not null"`
	Email        string     `json:"email" gorm:"size:100;not null;uniqueIndex"`
	Phone        string     `json:"phone" gorm:"size:20"`
	PasswordHash string     `json:"-" gorm:"size:100;not null"`
	Role         string     `json:"role" gorm:"size:20;not null;default:salesperson"`
	ShowroomID   *string    `json:"showroom_id" gorm:"type:uuid;index"`
	ManagerID    *string    `json:"manager_id" gorm:"type:uuid;index"`
	Status       string     `json:"status" gorm:"size:20;not null;default:active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at" gorm:"index"`
}

func (User) TableName() string {
	return "crm_users"
}
