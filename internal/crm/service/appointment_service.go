package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/repository"
	"github.com/google/uuid"
)

// AppointmentService customer visit scheduling
type AppointmentService struct {
	repo         *repository.AppointmentRepository
	customerRepo *repository.CustomerRepository
}

func NewAppointmentService(repo *repository.AppointmentRepository, customerRepo *repository.CustomerRepository) *AppointmentService {
	return &AppointmentService{repo: repo, customerRepo: customerRepo}
}

// CreateAppointmentRequest new appointment payload
type CreateAppointmentRequest struct {
	CustomerID    string    `json:"customer_id" binding:"required"`
	SalespersonID string    `json:"salesperson_id" binding:"required"`
	ScheduledAt   time.Time `json:"scheduled_at" binding:"required"`
	DurationMins  int       `json:"duration_mins"`
	Purpose       string    `json:"purpose"`
	Notes         string    `json:"notes"`
}

func (s *AppointmentService) Create(ctx context.Context, req *CreateAppointmentRequest, userID string) (*entity.Appointment, error) {
	customer, err := s.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}

	duration := req.DurationMins
	if duration <= 0 {
		duration = 30
	}

	appt := &entity.Appointment{
		ID:            uuid.New().String(),
		CustomerID:    customer.ID,
		SalespersonID: req.SalespersonID,
		ShowroomID:    customer.ShowroomID,
		ScheduledAt:   req.ScheduledAt,
		DurationMins:  duration,
		Purpose:       req.Purpose,
		Status:        entity.AppointmentStatusScheduled,
		Notes:         req.Notes,
		CreatedBy:     userID,
	}

	if err := s.repo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return appt, nil
}

func (s *AppointmentService) Get(ctx context.Context, id string) (*entity.Appointment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AppointmentService) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Appointment, int64, error) {
	return s.repo.FindAll(ctx, page, pageSize, filters)
}

// UpdateStatus moves an appointment through its lifecycle
func (s *AppointmentService) UpdateStatus(ctx context.Context, id, status string) (*entity.Appointment, error) {
	switch status {
	case entity.AppointmentStatusScheduled, entity.AppointmentStatusCompleted,
		entity.AppointmentStatusCancelled, entity.AppointmentStatusNoShow:
	default:
		return nil, fmt.Errorf("unknown appointment status %q", status)
	}

	appt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	appt.Status = status
	if err := s.repo.Update(ctx, appt); err != nil {
		return nil, fmt.Errorf("update appointment status: %w", err)
	}
	return appt, nil
}

func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
