package repository

import (
	"context"
	"errors"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
	"gorm.io/gorm"
)

// AppointmentRepository appointment data access
type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// FindAll lists appointments with optional filters, soonest first
func (r *AppointmentRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Appointment, int64, error) {
	var items []entity.Appointment
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Appointment{})

	if customerID := filters["customer_id"]; customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if salespersonID := filters["salesperson_id"]; salespersonID != "" {
		query = query.Where("salesperson_id = ?", salespersonID)
	}
	if showroomID := filters["showroom_id"]; showroomID != "" {
		query = query.Where("showroom_id = ?", showroomID)
	}
	if status := filters["status"]; status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("scheduled_at ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

// FindByID looks an appointment up by primary key
func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	var appt entity.Appointment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&appt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &appt, nil
}

// Create inserts an appointment
func (r *AppointmentRepository) Create(ctx context.Context, appt *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appt).Error
}

// Update saves an appointment
func (r *AppointmentRepository) Update(ctx context.Context, appt *entity.Appointment) error {
	return r.db.WithContext(ctx).Save(appt).Error
}

// Delete soft-deletes an appointment
func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{}).Error
}
