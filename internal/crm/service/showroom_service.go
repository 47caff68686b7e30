package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/repository"
	"github.com/google/uuid"
)

// ShowroomService showroom management
type ShowroomService struct {
	repo *repository.ShowroomRepository
}

func NewShowroomService(repo *repository.ShowroomRepository) *ShowroomService {
	return &ShowroomService{repo: repo}
}

// CreateShowroomRequest new showroom payload
type CreateShowroomRequest struct {
	Name    string `json:"name" binding:"required"`
	City    string `json:"city"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (s *ShowroomService) Create(ctx context.Context, req *CreateShowroomRequest) (*entity.Showroom, error) {
	showroom := &entity.Showroom{
		ID:      uuid.New().String(),
		Code:    fmt.Sprintf("SHR-%s%04d", time.Now().Format("20060102"), time.Now().UnixNano()%10000),
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
		Phone:   req.Phone,
		Status:  entity.ShowroomStatusActive,
	}

	if err := s.repo.Create(ctx, showroom); err != nil {
		return nil, fmt.Errorf("create showroom: %w", err)
	}
	return showroom, nil
}

func (s *ShowroomService) Get(ctx context.Context, id string) (*entity.Showroom, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ShowroomService) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Showroom, int64, error) {
	return s.repo.FindAll(ctx, page, pageSize, filters)
}

// UpdateShowroomRequest showroom update payload
type UpdateShowroomRequest struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Status  string `json:"status"`
}

func (s *ShowroomService) Update(ctx context.Context, id string, req *UpdateShowroomRequest) (*entity.Showroom, error) {
	showroom, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		showroom.Name = req.Name
	}
	if req.City != "" {
		showroom.City = req.City
	}
	if req.Address != "" {
		showroom.Address = req.Address
	}
	if req.Phone != "" {
		showroom.Phone = req.Phone
	}
	if req.Status != "" {
		showroom.Status = req.Status
	}

	if err := s.repo.Update(ctx, showroom); err != nil {
		return nil, fmt.Errorf("update showroom: %w", err)
	}
	return showroom, nil
}

func (s *ShowroomService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
