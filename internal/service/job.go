package service

import (
	"database/sql"
	"fmt"

	"jobboard/internal/models"
	"jobboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type JobService interface {
	ListJobs() ([]*models.Job, error)
	GetJob(id uuid.UUID) (*models.Job, error)
	CreateJob(req *models.CreateJobRequest) (*models.Job, error)
	UpdateJob(id uuid.UUID, req *models.UpdateJobRequest) (*models.Job, error)
	DeleteJob(id uuid.UUID) error
}

type jobService struct {
	jobs   repository.JobRepository
	logger *zap.Logger
}

func NewJobService(jobs repository.JobRepository, logger *zap.Logger) JobService {
	return &jobService{jobs: jobs, logger: logger}
}

func (s *jobService) ListJobs() ([]*models.Job, error) {
	jobs, err := s.jobs.GetAllJobs()
	if err != nil {
		s.logger.Error("Failed to list jobs", zap.Error(err))
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

func (s *jobService) GetJob(id uuid.UUID) (*models.Job, error) {
	job, err := s.jobs.GetJobByID(id)
	if err != nil {
		s.logger.Error("Failed to get job", zap.Error(err))
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if job == nil {
		return nil, ErrNotFound
	}
	return job, nil
}

func (s *jobService) CreateJob(req *models.CreateJobRequest) (*models.Job, error) {
	companyID, err := s.jobs.UpsertCompany(req.Company)
	if err != nil {
		s.logger.Error("Failed to upsert company", zap.Error(err))
		return nil, fmt.Errorf("failed to upsert company: %w", err)
	}

	job := &models.Job{
		ID:             uuid.New(),
		Title:          req.Title,
		CompanyID:      companyID,
		Company:        req.Company,
		Location:       nullString(req.Location),
		JobURL:         nullString(req.JobURL),
		JobDescription: nullString(req.JobDescription),
		JobType:        nullString(req.JobType),
		MinSalary:      nullFloat(req.MinSalary),
		MaxSalary:      nullFloat(req.MaxSalary),
		Currency:       nullString(req.Currency),
		JobSource:      nullString(req.JobSource),
	}

	if err := s.jobs.CreateJob(job); err != nil {
		s.logger.Error("Failed to create job", zap.Error(err))
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

func (s *jobService) UpdateJob(id uuid.UUID, req *models.UpdateJobRequest) (*models.Job, error) {
	existing, err := s.jobs.GetJobByID(id)
	if err != nil {
		s.logger.Error("Failed to get job for update", zap.Error(err))
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	companyID, err := s.jobs.UpsertCompany(req.Company)
	if err != nil {
		s.logger.Error("Failed to upsert company", zap.Error(err))
		return nil, fmt.Errorf("failed to upsert company: %w", err)
	}

	job := &models.Job{
		ID:             id,
		Title:          req.Title,
		CompanyID:      companyID,
		Company:        req.Company,
		Location:       nullString(req.Location),
		JobURL:         nullString(req.JobURL),
		JobDescription: nullString(req.JobDescription),
		JobType:        nullString(req.JobType),
		MinSalary:      nullFloat(req.MinSalary),
		MaxSalary:      nullFloat(req.MaxSalary),
		Currency:       nullString(req.Currency),
		JobSource:      nullString(req.JobSource),
		IsExpired:      req.IsExpired,
	}

	if err := s.jobs.UpdateJob(job); err != nil {
		s.logger.Error("Failed to update job", zap.Error(err))
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	updated, err := s.jobs.GetJobByID(id)
	if err != nil {
		s.logger.Error("Failed to re-read job after update", zap.Error(err))
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (s *jobService) DeleteJob(id uuid.UUID) error {
	existing, err := s.jobs.GetJobByID(id)
	if err != nil {
		s.logger.Error("Failed to get job for delete", zap.Error(err))
		return fmt.Errorf("failed to get job: %w", err)
	}
	if existing == nil {
		return ErrNotFound
	}

	if err := s.jobs.SoftDeleteJob(id); err != nil {
		s.logger.Error("Failed to delete job", zap.Error(err))
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
