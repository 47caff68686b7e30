package repository

import (
	"context"
	"errors"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
	"gorm.io/gorm"
)

// ShowroomRepository showroom data access
type ShowroomRepository struct {
	db *gorm.DB
}

func NewShowroomRepository(db *gorm.DB) *ShowroomRepository {
	return &ShowroomRepository{db: db}
}

// FindAll lists showrooms with optional search/status filters
func (r *ShowroomRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Showroom, int64, error) {
	var items []entity.Showroom
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Showroom{})

	if search := filters["search"]; search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ? OR city ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if status := filters["status"]; status != "" {
		query = query.Where("status = ?", status)
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

// FindByID looks a showroom up by primary key
func (r *ShowroomRepository) FindByID(ctx context.Context, id string) (*entity.Showroom, error) {
	var showroom entity.Showroom
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&showroom).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &showroom, nil
}

// Create inserts a showroom
func (r *ShowroomRepository) Create(ctx context.Context, showroom *entity.Showroom) error {
	return r.db.WithContext(ctx).Create(showroom).Error
}

// Update saves a showroom
func (r *ShowroomRepository) Update(ctx context.Context, showroom *entity.Showroom) error {
	return r.db.WithContext(ctx).Save(showroom).Error
}

// Delete soft-deletes a showroom
func (r *ShowroomRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Showroom{}).Error
}

// CountActive counts active showrooms
func (r *ShowroomRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Showroom{}).
		Where("status = ?", entity.ShowroomStatusActive).
		Count(&count).Error
	return count, err
}
