package handler

import (
	"errors"
	"io"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/repository"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/service"
	"github.com/gin-gonic/gin"
)

// MediaHandler customer media attachment endpoints
type MediaHandler struct {
	svc *service.MediaService
}

func NewMediaHandler(svc *service.MediaService) *MediaHandler {
	return &MediaHandler{svc: svc}
}

// Upload attach a file to a customer
// POST /api/v1/customers/:id/media (multipart form, field "file")
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		BadRequest(c, "open upload failed: "+err.Error())
		return
	}
	defer file.Close()

	media, err := h.svc.Upload(
		c.Request.Context(),
		c.Param("id"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
		GetUserID(c),
	)
	if err != nil {
		if errors.Is(err, service.ErrMediaDisabled) {
			Error(c, 50300, "media storage is not configured")
			return
		}
		InternalError(c, "upload media failed: "+err.Error())
		return
	}
	Created(c, media)
}

// List media attached to a customer
// GET /api/v1/customers/:id/media
func (h *MediaHandler) List(c *gin.Context) {
	items, err := h.svc.ListByCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		InternalError(c, "list media failed: "+err.Error())
		return
	}
	Success(c, items)
}

// Download stream a stored file
// GET /api/v1/media/:id/download
func (h *MediaHandler) Download(c *gin.Context) {
	media, reader, err := h.svc.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrMediaDisabled) {
			Error(c, 50300, "media storage is not configured")
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "media not found")
			return
		}
		InternalError(c, "download media failed: "+err.Error())
		return
	}
	defer reader.Close()

	c.Header("Content-Type", media.ContentType)
	c.Header("Content-Disposition", "attachment; filename="+media.FileName)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		InternalError(c, "stream media failed: "+err.Error())
	}
}
