package entity

import (
	"time"
)

// Showroom status
const (
	ShowroomStatusActive   = "active"
	ShowroomStatusInactive = "inactive"
)

// Showroom retail location
type Showroom struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Code      string     `json:"code" gorm:"size:50;not null;uniqueIndex"`
	Name      string     `json:"name" gorm:"size:200;not null"`
	City      string     `json:"city" gorm:"size:100"`
	Address   string     `json:"address" gorm:"size:500"`
	Phone     string     `json:"phone" gorm:"size:20"`
	Status    string     `json:"status" gorm:"size:20;not null;default:active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`
}

func (Showroom) TableName() string {
	return "crm_showrooms"
}
