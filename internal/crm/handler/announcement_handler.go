package handler

import (
	"errors"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/repository"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/service"
	"github.com/gin-gonic/gin"
)

// AnnouncementHandler internal announcement endpoints
type AnnouncementHandler struct {
	svc *service.AnnouncementService
}

func NewAnnouncementHandler(svc *service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{svc: svc}
}

// List all announcements (admin)
// GET /api/v1/announcements?page=1&page_size=20
func (h *AnnouncementHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize)
	if err != nil {
		InternalError(c, "list announcements failed: "+err.Error())
		return
	}

	Success(c, ListResponse{
		Items: items,
		Pagination: &Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      int(total),
			TotalPages: listPages(total, pageSize),
		},
	})
}

// ListActive unexpired announcements visible to the caller's role
// GET /api/v1/announcements/active
func (h *AnnouncementHandler) ListActive(c *gin.Context) {
	items, err := h.svc.ListActive(c.Request.Context(), GetUserRole(c))
	if err != nil {
		InternalError(c, "list active announcements failed: "+err.Error())
		return
	}
	Success(c, items)
}

// Get announcement detail
// GET /api/v1/announcements/:id
func (h *AnnouncementHandler) Get(c *gin.Context) {
	ann, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "announcement not found")
			return
		}
		InternalError(c, "get announcement failed: "+err.Error())
		return
	}
	Success(c, ann)
}

// Create new announcement
// POST /api/v1/announcements
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req service.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	ann, err := h.svc.Create(c.Request.Context(), &req, GetUserID(c))
	if err != nil {
		InternalError(c, "create announcement failed: "+err.Error())
		return
	}
	Created(c, ann)
}

// Delete announcement removal
// DELETE /api/v1/announcements/:id
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		InternalError(c, "delete announcement failed: "+err.Error())
		return
	}
	Success(c, nil)
}
