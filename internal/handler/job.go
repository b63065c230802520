package handler

import (
	"errors"
	"net/http"

	"jobboard/internal/models"
	"jobboard/internal/response"
	"jobboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type JobHandler interface {
	ListJobs(c *gin.Context)
	GetJob(c *gin.Context)
	CreateJob(c *gin.Context)
	UpdateJob(c *gin.Context)
	DeleteJob(c *gin.Context)
}

type jobHandler struct {
	jobService service.JobService
	logger     *zap.Logger
}

func NewJobHandler(jobService service.JobService, logger *zap.Logger) JobHandler {
	return &jobHandler{jobService: jobService, logger: logger}
}

// ListJobs handles GET /api/jobs
func (h *jobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobService.ListJobs()
	if err != nil {
		h.logger.Error("Failed to list jobs", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve jobs")
		return
	}

	out := make([]models.PublicJob, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, job.Public())
	}
	response.Success(c, http.StatusOK, out)
}

// GetJob handles GET /api/jobs/:job_id
func (h *jobHandler) GetJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid job id")
		return
	}

	job, err := h.jobService.GetJob(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Job not found")
			return
		}
		h.logger.Error("Failed to get job", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve job")
		return
	}

	response.Success(c, http.StatusOK, job.Public())
}

// CreateJob handles POST /api/jobs
func (h *jobHandler) CreateJob(c *gin.Context) {
	var req models.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	job, err := h.jobService.CreateJob(&req)
	if err != nil {
		h.logger.Error("Failed to create job", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to create job")
		return
	}

	response.Success(c, http.StatusCreated, job.Public())
}

// UpdateJob handles PUT /api/jobs/:job_id
func (h *jobHandler) UpdateJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid job id")
		return
	}

	var req models.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	job, err := h.jobService.UpdateJob(id, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Job not found")
			return
		}
		h.logger.Error("Failed to update job", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to update job")
		return
	}

	response.Success(c, http.StatusOK, job.Public())
}

// DeleteJob handles DELETE /api/jobs/:job_id
func (h *jobHandler) DeleteJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid job id")
		return
	}

	if err := h.jobService.DeleteJob(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Job not found")
			return
		}
		h.logger.Error("Failed to delete job", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to delete job")
		return
	}

	response.Success(c, http.StatusOK, nil)
}
