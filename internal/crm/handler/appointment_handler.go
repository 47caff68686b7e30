package handler

import (
	"errors"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/repository"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/service"
	"github.com/gin-gonic/gin"
)

// AppointmentHandler showroom appointment endpoints
type AppointmentHandler struct {
	svc *service.AppointmentService
}

func NewAppointmentHandler(svc *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

// List appointment list
// GET /api/v1/appointments?customer_id=xxx&status=xxx&page=1&page_size=20
func (h *AppointmentHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	filters := map[string]string{
		"customer_id":    c.Query("customer_id"),
		"salesperson_id": c.Query("salesperson_id"),
		"status":         c.Query("status"),
	}

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		InternalError(c, "list appointments failed: "+err.Error())
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

// Get appointment detail
// GET /api/v1/appointments/:id
func (h *AppointmentHandler) Get(c *gin.Context) {
	appt, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "appointment not found")
			return
		}
		InternalError(c, "get appointment failed: "+err.Error())
		return
	}
	Success(c, appt)
}

// Create new appointment
// POST /api/v1/appointments
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req service.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	appt, err := h.svc.Create(c.Request.Context(), &req, GetUserID(c))
	if err != nil {
		InternalError(c, "create appointment failed: "+err.Error())
		return
	}
	Created(c, appt)
}

type updateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus appointment status transition
// PUT /api/v1/appointments/:id/status
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req updateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	appt, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		BadRequest(c, "update appointment status failed: "+err.Error())
		return
	}
	Success(c, appt)
}

// Delete appointment removal
// DELETE /api/v1/appointments/:id
func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		InternalError(c, "delete appointment failed: "+err.Error())
		return
	}
	Success(c, nil)
}
