package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
	"gorm.io/gorm"
)

// CustomerScope narrows a customer query to what the requesting role may see.
// Empty slices mean no restriction on that dimension. Access control is
// expressed here as explicit filters; the aggregation code never sees it.
type CustomerScope struct {
	ShowroomIDs    []string
	SalespersonIDs []string
}

// CustomerRepository customer/lead data access
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) scoped(ctx context.Context, scope CustomerScope) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.Customer{})
	if len(scope.ShowroomIDs) > 0 {
		query = query.Where("showroom_id IN ?", scope.ShowroomIDs)
	}
	if len(scope.SalespersonIDs) > 0 {
		query = query.Where("assigned_salesperson_id IN ?", scope.SalespersonIDs)
	}
	return query
}

// FindAll lists customers inside a scope with optional filters
func (r *CustomerRepository) FindAll(ctx context.Context, scope CustomerScope, page, pageSize int, filters map[string]string) ([]entity.Customer, int64, error) {
	var items []entity.Customer
	var total int64

	query := r.scoped(ctx, scope)

	if search := filters["search"]; search != "" {
		query = query.Where("name ILIKE ? OR phone ILIKE ? OR customer_code ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if status := filters["lead_status"]; status != "" {
		query = query.Where("lead_status = ?", status)
	}
	if source := filters["lead_source"]; source != "" {
		query = query.Where("lead_source = ?", source)
	}
	if salespersonID := filters["salesperson_id"]; salespersonID != "" {
		query = query.Where("assigned_salesperson_id = ?", salespersonID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

// FindAllInScope fetches the full customer snapshot for a dashboard render.
// No pagination: the aggregation pass needs every row in scope.
func (r *CustomerRepository) FindAllInScope(ctx context.Context, scope CustomerScope) ([]entity.Customer, error) {
	var items []entity.Customer
	err := r.scoped(ctx, scope).Order("created_at ASC").Find(&items).Error
	return items, err
}

// FindByID looks a customer up by primary key
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// Create inserts a customer
func (r *CustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// Update saves a customer
func (r *CustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// Delete soft-deletes a customer
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Customer{}).Error
}

// CountInScope counts customers visible to a scope
func (r *CustomerRepository) CountInScope(ctx context.Context, scope CustomerScope) (int64, error) {
	var count int64
	err := r.scoped(ctx, scope).Count(&count).Error
	return count, err
}

// GenerateCode generates the next customer code CUS-{6 digits}. Backed by a
// Postgres sequence so concurrent creates never collide on the unique index.
func (r *CustomerRepository) GenerateCode(ctx context.Context) (string, error) {
	var seq int
	err := r.db.WithContext(ctx).Raw("SELECT nextval('customer_code_seq')").Scan(&seq).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("CUS-%06d", seq), nil
}
