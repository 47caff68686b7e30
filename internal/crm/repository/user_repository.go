package repository

import (
	"context"
	"errors"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
	"gorm.io/gorm"
)

// UserRepository portal account data access
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindAll lists users with optional role/status/showroom filters
func (r *UserRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.User, int64, error) {
	var items []entity.User
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.User{})

	if search := filters["search"]; search != "" {
		query = query.Where("name ILIKE ? OR email ILIKE ? OR employee_code ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if role := filters["role"]; role != "" {
		query = query.Where("role = ?", role)
	}
	if status := filters["status"]; status != "" {
		query = query.Where("status = ?", status)
	}
	if showroomID := filters["showroom_id"]; showroomID != "" {
		query = query.Where("showroom_id = ?", showroomID)
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

// FindByID looks a user up by primary key
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail looks a user up by login email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts a user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Update saves a user
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// CountByRole counts active users holding a role
func (r *UserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("role = ? AND status = ?", role, entity.UserStatusActive).
		Count(&count).Error
	return count, err
}

// SalespersonIDsByManager returns the ids of salespeople reporting to one
// manager. Used to build the manager dashboard customer scope.
func (r *UserRepository) SalespersonIDsByManager(ctx context.Context, managerID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("manager_id = ? AND role = ?", managerID, entity.RoleSalesperson).
		Pluck("id", &ids).Error
	return ids, err
}
