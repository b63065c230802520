package service

import (
	"errors"
	"fmt"
	"time"

	"jobboard/internal/models"
	"jobboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidStatus rejects application statuses outside the fixed
// vocabulary. Surfaced as a 400, not folded into the auth errors.
var ErrInvalidStatus = errors.New("invalid application status")

type ApplicationService interface {
	ListApplications(userID uuid.UUID) ([]*models.Application, error)
	GetApplication(id, userID uuid.UUID) (*models.Application, error)
	CreateApplication(userID uuid.UUID, req *models.CreateApplicationRequest) (*models.Application, error)
	UpdateApplication(id, userID uuid.UUID, req *models.UpdateApplicationRequest) (*models.Application, error)
	UpdateApplicationStatus(id, userID uuid.UUID, status string) (*models.Application, error)
	DeleteApplication(id, userID uuid.UUID) error
}

type applicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	logger       *zap.Logger
}

func NewApplicationService(applications repository.ApplicationRepository, jobs repository.JobRepository, logger *zap.Logger) ApplicationService {
	return &applicationService{
		applications: applications,
		jobs:         jobs,
		logger:       logger,
	}
}

func (s *applicationService) ListApplications(userID uuid.UUID) ([]*models.Application, error) {
	apps, err := s.applications.GetApplicationsByUser(userID)
	if err != nil {
		s.logger.Error("Failed to list applications", zap.Error(err))
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

func (s *applicationService) GetApplication(id, userID uuid.UUID) (*models.Application, error) {
	app, err := s.applications.GetApplicationByID(id, userID)
	if err != nil {
		s.logger.Error("Failed to get application", zap.Error(err))
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	if app == nil {
		return nil, ErrNotFound
	}
	return app, nil
}

func (s *applicationService) CreateApplication(userID uuid.UUID, req *models.CreateApplicationRequest) (*models.Application, error) {
	status := req.Status
	if status == "" {
		status = models.ApplicationStatusApplied
	}
	if !models.IsValidApplicationStatus(status) {
		return nil, ErrInvalidStatus
	}

	// The application must point at a live job posting.
	job, err := s.jobs.GetJobByID(req.JobID)
	if err != nil {
		s.logger.Error("Failed to check job for application", zap.Error(err))
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if job == nil {
		return nil, ErrNotFound
	}

	app := &models.Application{
		ID:            uuid.New(),
		UserID:        userID,
		JobID:         req.JobID,
		Status:        status,
		AppliedAt:     time.Now(),
		AttemptNumber: 1,
		Notes:         nullString(req.Notes),
	}

	if err := s.applications.CreateApplication(app); err != nil {
		s.logger.Error("Failed to create application", zap.Error(err))
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return app, nil
}

func (s *applicationService) UpdateApplication(id, userID uuid.UUID, req *models.UpdateApplicationRequest) (*models.Application, error) {
	if !models.IsValidApplicationStatus(req.Status) {
		return nil, ErrInvalidStatus
	}

	existing, err := s.applications.GetApplicationByID(id, userID)
	if err != nil {
		s.logger.Error("Failed to get application for update", zap.Error(err))
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	existing.Status = req.Status
	existing.OfferReceived = req.OfferReceived
	existing.AttemptNumber = req.AttemptNumber
	existing.Notes = nullString(req.Notes)

	if err := s.applications.UpdateApplication(existing); err != nil {
		s.logger.Error("Failed to update application", zap.Error(err))
		return nil, fmt.Errorf("failed to update application: %w", err)
	}

	return s.GetApplication(id, userID)
}

func (s *applicationService) UpdateApplicationStatus(id, userID uuid.UUID, status string) (*models.Application, error) {
	if !models.IsValidApplicationStatus(status) {
		return nil, ErrInvalidStatus
	}

	updated, err := s.applications.UpdateApplicationStatus(id, userID, status)
	if err != nil {
		s.logger.Error("Failed to update application status", zap.Error(err))
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	if !updated {
		return nil, ErrNotFound
	}

	return s.GetApplication(id, userID)
}

func (s *applicationService) DeleteApplication(id, userID uuid.UUID) error {
	deleted, err := s.applications.SoftDeleteApplication(id, userID)
	if err != nil {
		s.logger.Error("Failed to delete application", zap.Error(err))
		return fmt.Errorf("failed to delete application: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
