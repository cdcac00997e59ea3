package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careercode/careercode-api/internal/apperrors"
	"github.com/careercode/careercode-api/internal/dtos"
	"github.com/careercode/careercode-api/internal/middleware"
	"github.com/careercode/careercode-api/internal/models"
	"github.com/careercode/careercode-api/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: apps}
}

// ListMine is GET /applications, behind middleware.RequireToken. The
// requested ?email= must match the identity the token verified to; a
// mismatch never reaches the store.
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	email := c.Query("email")
	verified := c.GetString(middleware.ContextEmailKey)
	if email != verified {
		apperrors.HandleError(c, apperrors.ErrForbidden("forbidden access"))
		return
	}

	apps, err := h.Applications.ListForApplicant(c.Request.Context(), email)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	if apps == nil {
		apps = []models.Application{}
	}
	c.JSON(http.StatusOK, apps)
}

// ListByJob is GET /applications/job/:job_id.
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	apps, err := h.Applications.ListByJob(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	if apps == nil {
		apps = []models.Application{}
	}
	c.JSON(http.StatusOK, apps)
}

// CreateApplication is POST /applications, same verbatim-insert contract
// as job creation.
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		apperrors.HandleError(c, apperrors.ErrBadRequest("invalid JSON body"))
		return
	}

	app, err := h.Applications.Create(c.Request.Context(), doc)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// UpdateStatus is PATCH /applications/:id with body {status}. Only the
// status field changes.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.ErrBadRequest("status is required"))
		return
	}

	if err := h.Applications.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
