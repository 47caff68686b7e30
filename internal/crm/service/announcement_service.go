package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/repository"
	"github.com/google/uuid"
)

// AnnouncementService broadcast message management
type AnnouncementService struct {
	repo *repository.AnnouncementRepository
}

func NewAnnouncementService(repo *repository.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{repo: repo}
}

// CreateAnnouncementRequest new announcement payload
type CreateAnnouncementRequest struct {
	Title      string     `json:"title" binding:"required"`
	Body       string     `json:"body" binding:"required"`
	Audience   string     `json:"audience"`
	ShowroomID *string    `json:"showroom_id"`
	Pinned     bool       `json:"pinned"`
	ExpiresAt  *time.Time `json:"expires_at"`
}

func (s *AnnouncementService) Create(ctx context.Context, req *CreateAnnouncementRequest, userID string) (*entity.Announcement, error) {
	audience := req.Audience
	if audience == "" {
		audience = entity.AudienceAll
	}

	ann := &entity.Announcement{
		ID:         uuid.New().String(),
		Title:      req.Title,
		Body:       req.Body,
		Audience:   audience,
		ShowroomID: req.ShowroomID,
		Pinned:     req.Pinned,
		ExpiresAt:  req.ExpiresAt,
		CreatedBy:  userID,
	}

	if err := s.repo.Create(ctx, ann); err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}
	return ann, nil
}

func (s *AnnouncementService) Get(ctx context.Context, id string) (*entity.Announcement, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AnnouncementService) List(ctx context.Context, page, pageSize int) ([]entity.Announcement, int64, error) {
	return s.repo.FindAll(ctx, page, pageSize)
}

// ListActive lists live announcements for a role's portal home page
func (s *AnnouncementService) ListActive(ctx context.Context, role string) ([]entity.Announcement, error) {
	audience := entity.AudienceAll
	switch role {
	case entity.RoleManager:
		audience = entity.AudienceManagers
	case entity.RoleSalesperson:
		audience = entity.AudienceSalespeople
	}
	return s.repo.FindActive(ctx, audience, time.Now())
}

func (s *AnnouncementService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
