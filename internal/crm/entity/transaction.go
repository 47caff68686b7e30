package entity

import (
	"time"
)

// SalesTransaction a completed sale recorded against a showroom and customer
type SalesTransaction struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ShowroomID      string    `json:"showroom_id" gorm:"type:uuid;not null;index"`
	CustomerID      string    `json:"customer_id" gorm:"type:uuid;not null;index"`
	SalespersonID   *string   `json:"salesperson_id" gorm:"type:uuid;index"`
	TotalAmount     float64   `json:"total_amount" gorm:"type:decimal(14,2);not null"`
	TransactionDate time.Time `json:"transaction_date" gorm:"not null;index"`
	Notes           string    `json:"notes" gorm:"type:text"`
	CreatedBy       string    `json:"created_by" gorm:"size:64"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (SalesTransaction) TableName() string {
	return "crm_sales_transactions"
}
