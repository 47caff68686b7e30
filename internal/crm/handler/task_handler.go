package handler

import (
	"errors"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/repository"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/service"
	"github.com/gin-gonic/gin"
)

// TaskHandler task assignment endpoints
type TaskHandler struct {
	svc *service.TaskService
}

func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// List task list
// GET /api/v1/tasks?assignee_id=xxx&status=xxx&page=1&page_size=20
func (h *TaskHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	filters := map[string]string{
		"assignee_id": c.Query("assignee_id"),
		"status":      c.Query("status"),
		"priority":    c.Query("priority"),
	}

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		InternalError(c, "list tasks failed: "+err.Error())
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

// Get task detail
// GET /api/v1/tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	task, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "task not found")
			return
		}
		InternalError(c, "get task failed: "+err.Error())
		return
	}
	Success(c, task)
}

// Create new task
// POST /api/v1/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	task, err := h.svc.Create(c.Request.Context(), &req, GetUserID(c))
	if err != nil {
		InternalError(c, "create task failed: "+err.Error())
		return
	}
	Created(c, task)
}

type updateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus task status transition
// PUT /api/v1/tasks/:id/status
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	var req updateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	task, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		BadRequest(c, "update task status failed: "+err.Error())
		return
	}
	Success(c, task)
}

// ListOverdue caller's overdue tasks
// GET /api/v1/tasks/overdue
func (h *TaskHandler) ListOverdue(c *gin.Context) {
	tasks, err := h.svc.GetOverdue(c.Request.Context(), GetUserID(c))
	if err != nil {
		InternalError(c, "list overdue tasks failed: "+err.Error())
		return
	}
	Success(c, tasks)
}

// Delete task removal
// DELETE /api/v1/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		InternalError(c, "delete task failed: "+err.Error())
		return
	}
	Success(c, nil)
}
