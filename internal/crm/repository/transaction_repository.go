package repository

import (
	"context"
	"time"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
	"gorm.io/gorm"
)

// TransactionRepository sales transaction data access
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create inserts a sales transaction
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.SalesTransaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

// ListByCustomer lists a customer's transactions, newest first
func (r *TransactionRepository) ListByCustomer(ctx context.Context, customerID string) ([]entity.SalesTransaction, error) {
	var items []entity.SalesTransaction
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("transaction_date DESC").
		Find(&items).Error
	return items, err
}

// TxnScope narrows transaction sums the same way CustomerScope narrows
// customer queries. Empty slices mean no restriction.
type TxnScope struct {
	ShowroomIDs    []string
	SalespersonIDs []string
}

// SumBetween sums gross sales in [start, end) inside a scope. Feeds the
// YTD/MTD dashboard windows.
func (r *TransactionRepository) SumBetween(ctx context.Context, start, end time.Time, scope TxnScope) (float64, error) {
	var total float64
	query := r.db.WithContext(ctx).
		Model(&entity.SalesTransaction{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("transaction_date >= ? AND transaction_date < ?", start, end)
	if len(scope.ShowroomIDs) > 0 {
		query = query.Where("showroom_id IN ?", scope.ShowroomIDs)
	}
	if len(scope.SalespersonIDs) > 0 {
		query = query.Where("salesperson_id IN ?", scope.SalespersonIDs)
	}
	err := query.Scan(&total).Error
	return total, err
}
