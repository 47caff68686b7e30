package handler

import (
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/service"
	"github.com/gin-gonic/gin"
)

// ShowroomHandler showroom endpoints
type ShowroomHandler struct {
	svc *service.ShowroomService
}

func NewShowroomHandler(svc *service.ShowroomService) *ShowroomHandler {
	return &ShowroomHandler{svc: svc}
}

// List showroom list
// GET /api/v1/showrooms?search=xxx&status=xxx&page=1&page_size=20
func (h *ShowroomHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	filters := map[string]string{
		"search": c.Query("search"),
		"status": c.Query("status"),
	}

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		InternalError(c, "list showrooms failed: "+err.Error())
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

// Get showroom detail
// GET /api/v1/showrooms/:id
func (h *ShowroomHandler) Get(c *gin.Context) {
	showroom, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		NotFound(c, "showroom not found")
		return
	}
	Success(c, showroom)
}

// Create new showroom
// POST /api/v1/showrooms
func (h *ShowroomHandler) Create(c *gin.Context) {
	var req service.CreateShowroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	showroom, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		InternalError(c, "create showroom failed: "+err.Error())
		return
	}
	Created(c, showroom)
}

// Update showroom update
// PUT /api/v1/showrooms/:id
func (h *ShowroomHandler) Update(c *gin.Context) {
	var req service.UpdateShowroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	showroom, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		InternalError(c, "update showroom failed: "+err.Error())
		return
	}
	Success(c, showroom)
}

// Delete showroom removal
// DELETE /api/v1/showrooms/:id
func (h *ShowroomHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		InternalError(c, "delete showroom failed: "+err.Error())
		return
	}
	Success(c, nil)
}
