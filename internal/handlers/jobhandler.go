package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careercode/careercode-api/internal/apperrors"
	"github.com/careercode/careercode-api/internal/models"
	"github.com/careercode/careercode-api/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{JobService: jobs}
}

// ListJobs is GET /jobs. An optional ?email= filters by the posting owner.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.JobService.List(c.Request.Context(), c.Query("email"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob is GET /jobs/:id.
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.JobService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob is POST /jobs. The body is stored verbatim; there is
// deliberately no schema validation on posting documents.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		apperrors.HandleError(c, apperrors.ErrBadRequest("invalid JSON body"))
		return
	}

	job, err := h.JobService.Create(c.Request.Context(), doc)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}
