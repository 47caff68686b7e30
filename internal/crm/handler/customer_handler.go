package handler

import (
	"errors"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/repository"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/service"
	"github.com/gin-gonic/gin"
)

// CustomerHandler customer/lead endpoints
type CustomerHandler struct {
	svc *service.CustomerService
}

func NewCustomerHandler(svc *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// List customer list, scoped by the caller's role
// GET /api/v1/customers?search=xxx&lead_status=xxx&lead_source=xxx&page=1&page_size=20
func (h *CustomerHandler) List(c *gin.Context) {
	scope, err := h.svc.ScopeFor(c.Request.Context(), GetUserRole(c), GetUserID(c))
	if err != nil {
		InternalError(c, "resolve scope failed: "+err.Error())
		return
	}

	page, pageSize := GetPagination(c)
	filters := map[string]string{
		"search":         c.Query("search"),
		"lead_status":    c.Query("lead_status"),
		"lead_source":    c.Query("lead_source"),
		"salesperson_id": c.Query("salesperson_id"),
	}

	items, total, err := h.svc.List(c.Request.Context(), scope, page, pageSize, filters)
	if err != nil {
		InternalError(c, "list customers failed: "+err.Error())
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

// Get customer detail
// GET /api/v1/customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "customer not found")
			return
		}
		InternalError(c, "get customer failed: "+err.Error())
		return
	}
	Success(c, customer)
}

// Create new customer
// POST /api/v1/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req service.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	customer, err := h.svc.Create(c.Request.Context(), &req, GetUserID(c))
	if err != nil {
		InternalError(c, "create customer failed: "+err.Error())
		return
	}
	Created(c, customer)
}

// Update customer update
// PUT /api/v1/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	var req service.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	customer, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "customer not found")
			return
		}
		BadRequest(c, "update customer failed: "+err.Error())
		return
	}
	Success(c, customer)
}

// Delete customer removal
// DELETE /api/v1/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		InternalError(c, "delete customer failed: "+err.Error())
		return
	}
	Success(c, nil)
}

type updateLeadStatusRequest struct {
	LeadStatus string `json:"lead_status" binding:"required"`
}

// UpdateLeadStatus funnel stage transition
// PUT /api/v1/customers/:id/lead-status
func (h *CustomerHandler) UpdateLeadStatus(c *gin.Context) {
	var req updateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	customer, err := h.svc.UpdateLeadStatus(c.Request.Context(), c.Param("id"), req.LeadStatus)
	if err != nil {
		BadRequest(c, "update lead status failed: "+err.Error())
		return
	}
	Success(c, customer)
}

// RecordPurchase converted sale
// POST /api/v1/customers/:id/purchase
func (h *CustomerHandler) RecordPurchase(c *gin.Context) {
	var req service.RecordPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	customer, err := h.svc.RecordPurchase(c.Request.Context(), c.Param("id"), &req, GetUserID(c))
	if err != nil {
		InternalError(c, "record purchase failed: "+err.Error())
		return
	}
	Success(c, customer)
}

// RecordWalkout lost lead with reason
// POST /api/v1/customers/:id/walkout
func (h *CustomerHandler) RecordWalkout(c *gin.Context) {
	var req service.RecordWalkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	customer, err := h.svc.RecordWalkout(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		InternalError(c, "record walkout failed: "+err.Error())
		return
	}
	Success(c, customer)
}
