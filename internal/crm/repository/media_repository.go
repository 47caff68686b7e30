package repository

import (
	"context"
	"errors"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
	"gorm.io/gorm"
)

// MediaRepository uploaded file metadata access
type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// Create inserts a media record
func (r *MediaRepository) Create(ctx context.Context, media *entity.MediaFile) error {
	return r.db.WithContext(ctx).Create(media).Error
}

// FindByID looks a media record up by primary key
func (r *MediaRepository) FindByID(ctx context.Context, id string) (*entity.MediaFile, error) {
	var media entity.MediaFile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&media).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &media, nil
}

// ListByCustomer lists a customer's uploads, newest first
func (r *MediaRepository) ListByCustomer(ctx context.Context, customerID string) ([]entity.MediaFile, error) {
	var items []entity.MediaFile
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// Delete removes a media record
func (r *MediaRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.MediaFile{}).Error
}
