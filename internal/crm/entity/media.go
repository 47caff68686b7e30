package entity

import (
	"time"
)

// MediaFile a design reference or document uploaded against a customer,
// stored in object storage under ObjectName
type MediaFile struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CustomerID  string    `json:"customer_id" gorm:"type:uuid;not null;index"`
	FileName    string    `json:"file_name" gorm:"size:300;not null"`
	ObjectName  string    `json:"object_name" gorm:"size:400;not null"`
	ContentType string    `json:"content_type" gorm:"size:100"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedBy  string    `json:"uploaded_by" gorm:"size:64"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (MediaFile) TableName() string {
	return "crm_media_files"
}
