package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
	"gorm.io/gorm"
)

// AnnouncementRepository announcement data access
type AnnouncementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// FindActive lists unexpired announcements visible to a role, pinned first
func (r *AnnouncementRepository) FindActive(ctx context.Context, audience string, now time.Time) ([]entity.Announcement, error) {
	var items []entity.Announcement
	err := r.db.WithContext(ctx).
		Where("(audience = ? OR audience = ?) AND (expires_at IS NULL OR expires_at > ?)",
			audience, entity.AudienceAll, now).
		Order("pinned DESC, created_at DESC").
		Find(&items).Error
	return items, err
}

// FindAll lists every announcement, newest first
func (r *AnnouncementRepository) FindAll(ctx context.Context, page, pageSize int) ([]entity.Announcement, int64, error) {
	var items []entity.Announcement
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Announcement{})
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

// FindByID looks an announcement up by primary key
func (r *AnnouncementRepository) FindByID(ctx context.Context, id string) (*entity.Announcement, error) {
	var ann entity.Announcement
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&ann).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ann, nil
}

// Create inserts an announcement
func (r *AnnouncementRepository) Create(ctx context.Context, ann *entity.Announcement) error {
	return r.db.WithContext(ctx).Create(ann).Error
}

// Update saves an announcement
func (r *AnnouncementRepository) Update(ctx context.Context, ann *entity.Announcement) error {
	return r.db.WithContext(ctx).Save(ann).Error
}

// Delete soft-deletes an announcement
func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Announcement{}).Error
}
