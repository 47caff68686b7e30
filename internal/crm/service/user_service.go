package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/repository"
	"github.com/google/uuid"
)

// UserService portal account management
type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// CreateUserRequest new account payload
type CreateUserRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      string  `json:"phone"`
	Password   string  `json:"password" binding:"required,min=8"`
	Role       string  `json:"role" binding:"required,oneof=admin manager salesperson"`
	ShowroomID *string `json:"showroom_id"`
	ManagerID  *string `json:"manager_id"`
}

func (s *UserService) Create(ctx context.Context, req *CreateUserRequest, createdBy string) (*entity.User, error) {
	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		EmployeeCode: fmt.Sprintf("EMP-%s%04d", time.Now().Format("20060102"), time.Now().UnixNano()%10000),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         req.Role,
		ShowroomID:   req.ShowroomID,
		ManagerID:    req.ManagerID,
		Status:       entity.UserStatusActive,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.User, int64, error) {
	return s.repo.FindAll(ctx, page, pageSize, filters)
}

// UpdateUserRequest account update payload; empty fields are left unchanged
type UpdateUserRequest struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Status     string  `json:"status"`
	ShowroomID *string `json:"showroom_id"`
	ManagerID  *string `json:"manager_id"`
}

func (s *UserService) Update(ctx context.Context, id string, req *UpdateUserRequest) (*entity.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Status != "" {
		user.Status = req.Status
	}
	if req.ShowroomID != nil {
		user.ShowroomID = req.ShowroomID
	}
	if req.ManagerID != nil {
		user.ManagerID = req.ManagerID
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}
