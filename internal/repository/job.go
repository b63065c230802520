package repository

import (
	"database/sql"

	"jobboard/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type JobRepository interface {
	GetAllJobs() ([]*models.Job, error)
	GetJobByID(id uuid.UUID) (*models.Job, error)
	CreateJob(job *models.Job) error
	UpdateJob(job *models.Job) error
	SoftDeleteJob(id uuid.UUID) error
	UpsertCompany(name string) (uuid.UUID, error)
}

const jobColumns = `j.id, j.title, j.company_id, c.name AS company, j.location, j.job_url,
	          j.job_description, j.job_type, j.min_salary, j.max_salary, j.currency,
	          j.job_source, j.is_expired, j.created_at, j.updated_at, j.deleted_at`

type jobRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewJobRepository(db *sqlx.DB, logger *zap.Logger) JobRepository {
	return &jobRepository{db: db, logger: logger}
}

func (r *jobRepository) GetAllJobs() ([]*models.Job, error) {
	jobs := []*models.Job{}
	query := `SELECT ` + jobColumns + `
	          FROM jobs j JOIN companies c ON j.company_id = c.id
	          WHERE j.deleted_at IS NULL
	          ORDER BY j.created_at DESC`
	err := r.db.Select(&jobs, query)
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) GetJobByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	query := `SELECT ` + jobColumns + `
	          FROM jobs j JOIN companies c ON j.company_id = c.id
	          WHERE j.id = $1 AND j.deleted_at IS NULL`
	err := r.db.Get(&job, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Job not found
		}
		return nil, err
	}
	return &job, nil
}

// UpsertCompany resolves a company name to its id, creating the row on
// first sight.
func (r *jobRepository) UpsertCompany(name string) (uuid.UUID, error) {
	var id uuid.UUID
	query := `INSERT INTO companies (id, name, created_at, updated_at)
	          VALUES ($1, $2, NOW(), NOW())
	          ON CONFLICT (name) DO UPDATE SET updated_at = NOW()
	          RETURNING id`
	err := r.db.Get(&id, query, uuid.New(), name)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *jobRepository) CreateJob(job *models.Job) error {
	query := `INSERT INTO jobs (id, title, company_id, location, job_url, job_description,
	                            job_type, min_salary, max_salary, currency, job_source,
	                            is_expired, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	          RETURNING created_at, updated_at`
	return r.db.QueryRowx(query, job.ID, job.Title, job.CompanyID, job.Location, job.JobURL,
		job.JobDescription, job.JobType, job.MinSalary, job.MaxSalary, job.Currency,
		job.JobSource, job.IsExpired).Scan(&job.CreatedAt, &job.UpdatedAt)
}

func (r *jobRepository) UpdateJob(job *models.Job) error {
	query := `UPDATE jobs SET title = $1, company_id = $2, location = $3, job_url = $4,
	                          job_description = $5, job_type = $6, min_salary = $7,
	                          max_salary = $8, currency = $9, job_source = $10,
	                          is_expired = $11, updated_at = NOW()
	          WHERE id = $12 AND deleted_at IS NULL`
	_, err := r.db.Exec(query, job.Title, job.CompanyID, job.Location, job.JobURL,
		job.JobDescription, job.JobType, job.MinSalary, job.MaxSalary, job.Currency,
		job.JobSource, job.IsExpired, job.ID)
	return err
}

func (r *jobRepository) SoftDeleteJob(id uuid.UUID) error {
	query := `UPDATE jobs SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.Exec(query, id)
	return err
}
