package handler

import (
	"errors"
	"net/http"

	"jobboard/internal/middleware"
	"jobboard/internal/models"
	"jobboard/internal/response"
	"jobboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApplicationHandler interface {
	ListApplications(c *gin.Context)
	GetApplication(c *gin.Context)
	CreateApplication(c *gin.Context)
	UpdateApplication(c *gin.Context)
	UpdateApplicationStatus(c *gin.Context)
	DeleteApplication(c *gin.Context)
}

type applicationHandler struct {
	applicationService service.ApplicationService
	logger             *zap.Logger
}

func NewApplicationHandler(applicationService service.ApplicationService, logger *zap.Logger) ApplicationHandler {
	return &applicationHandler{applicationService: applicationService, logger: logger}
}

// ListApplications handles GET /api/applications
func (h *applicationHandler) ListApplications(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	apps, err := h.applicationService.ListApplications(userID)
	if err != nil {
		h.logger.Error("Failed to list applications", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve applications")
		return
	}

	out := make([]models.PublicApplication, 0, len(apps))
	for _, app := range apps {
		out = append(out, app.Public())
	}
	response.Success(c, http.StatusOK, out)
}

// GetApplication handles GET /api/applications/:application_id
func (h *applicationHandler) GetApplication(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	id, err := uuid.Parse(c.Param("application_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid application id")
		return
	}

	app, err := h.applicationService.GetApplication(id, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Application not found")
			return
		}
		h.logger.Error("Failed to get application", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve application")
		return
	}

	response.Success(c, http.StatusOK, app.Public())
}

// CreateApplication handles POST /api/applications
func (h *applicationHandler) CreateApplication(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	var req models.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	app, err := h.applicationService.CreateApplication(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "Invalid application status")
		case errors.Is(err, service.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Job not found")
		default:
			h.logger.Error("Failed to create application", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "Failed to create application")
		}
		return
	}

	response.Success(c, http.StatusCreated, app.Public())
}

// UpdateApplication handles PUT /api/applications/:application_id
func (h *applicationHandler) UpdateApplication(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	id, err := uuid.Parse(c.Param("application_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid application id")
		return
	}

	var req models.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	app, err := h.applicationService.UpdateApplication(id, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "Invalid application status")
		case errors.Is(err, service.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Application not found")
		default:
			h.logger.Error("Failed to update application", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "Failed to update application")
		}
		return
	}

	response.Success(c, http.StatusOK, app.Public())
}

// UpdateApplicationStatus handles PATCH /api/applications/:application_id/status
func (h *applicationHandler) UpdateApplicationStatus(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	id, err := uuid.Parse(c.Param("application_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid application id")
		return
	}

	var req models.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	app, err := h.applicationService.UpdateApplicationStatus(id, userID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "Invalid application status")
		case errors.Is(err, service.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Application not found")
		default:
			h.logger.Error("Failed to update application status", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "Failed to update application status")
		}
		return
	}

	response.Success(c, http.StatusOK, app.Public())
}

// DeleteApplication handles DELETE /api/applications/:application_id
func (h *applicationHandler) DeleteApplication(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	id, err := uuid.Parse(c.Param("application_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid application id")
		return
	}

	if err := h.applicationService.DeleteApplication(id, userID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Application not found")
			return
		}
		h.logger.Error("Failed to delete application", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to delete application")
		return
	}

	response.Success(c, http.StatusOK, nil)
}
