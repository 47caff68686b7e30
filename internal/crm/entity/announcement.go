package entity

import (
	"time"
)

// Announcement audience (role the announcement targets, "all" for everyone)
const (
	AudienceAll         = "all"
	AudienceManagers    = "managers"
	AudienceSalespeople = "salespeople"
)

// Announcement a broadcast message shown on the portal home pages
type Announcement struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title      string     `json:"title" gorm:"size:200;not null"`
	Body       string     `json:"body" gorm:"type:text;not null"`
	Audience   string     `json:"audience" gorm:"size:20;not null;default:all"`
	ShowroomID *string    `json:"showroom_id" gorm:"type:uuid;index"`
	Pinned     bool       `json:"pinned" gorm:"default:false"`
	ExpiresAt  *time.Time `json:"expires_at"`
	CreatedBy  string     `json:"created_by" gorm:"size:64"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at" gorm:"index"`
}

func (Announcement) TableName() string {
	return "crm_announcements"
}
