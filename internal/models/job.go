package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Job is a row in the jobs table joined with the owning company name.
// DeletedAt marks soft deletion; deleted rows never leave the repository.
// Endpoints serialize PublicJob, never this struct.
type Job struct {
	ID             uuid.UUID       `db:"id"`
	Title          string          `db:"title"`
	CompanyID      uuid.UUID       `db:"company_id"`
	Company        string          `db:"company"`
	Location       sql.NullString  `db:"location"`
	JobURL         sql.NullString  `db:"job_url"`
	JobDescription sql.NullString  `db:"job_description"`
	JobType        sql.NullString  `db:"job_type"`
	MinSalary      sql.NullFloat64 `db:"min_salary"`
	MaxSalary      sql.NullFloat64 `db:"max_salary"`
	Currency       sql.NullString  `db:"currency"`
	JobSource      sql.NullString  `db:"job_source"`
	IsExpired      bool            `db:"is_expired"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
	DeletedAt      sql.NullTime    `db:"deleted_at"`
}

// PublicJob is the job shape exposed over the API. Absent optional columns
// serialize as plain JSON null, not as sql.Null* wrappers.
type PublicJob struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	CompanyID      uuid.UUID `json:"company_id"`
	Company        string    `json:"company"`
	Location       *string   `json:"location"`
	JobURL         *string   `json:"job_url"`
	JobDescription *string   `json:"job_description"`
	JobType        *string   `json:"job_type"`
	MinSalary      *float64  `json:"min_salary"`
	MaxSalary      *float64  `json:"max_salary"`
	Currency       *string   `json:"currency"`
	JobSource      *string   `json:"job_source"`
	IsExpired      bool      `json:"is_expired"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Public strips the soft-delete column and unwraps the nullable fields.
func (j *Job) Public() PublicJob {
	return PublicJob{
		ID:             j.ID,
		Title:          j.Title,
		CompanyID:      j.CompanyID,
		Company:        j.Company,
		Location:       stringPtr(j.Location),
		JobURL:         stringPtr(j.JobURL),
		JobDescription: stringPtr(j.JobDescription),
		JobType:        stringPtr(j.JobType),
		MinSalary:      floatPtr(j.MinSalary),
		MaxSalary:      floatPtr(j.MaxSalary),
		Currency:       stringPtr(j.Currency),
		JobSource:      stringPtr(j.JobSource),
		IsExpired:      j.IsExpired,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func floatPtr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	return &nf.Float64
}

type CreateJobRequest struct {
	Title          string   `json:"title" binding:"required"`
	Company        string   `json:"company" binding:"required"`
	Location       *string  `json:"location"`
	JobURL         *string  `json:"job_url"`
	JobDescription *string  `json:"job_description"`
	JobType        *string  `json:"job_type"`
	MinSalary      *float64 `json:"min_salary"`
	MaxSalary      *float64 `json:"max_salary"`
	Currency       *string  `json:"currency"`
	JobSource      *string  `json:"job_source"`
}

type UpdateJobRequest struct {
	Title          string   `json:"title" binding:"required"`
	Company        string   `json:"company" binding:"required"`
	Location       *string  `json:"location"`
	JobURL         *string  `json:"job_url"`
	JobDescription *string  `json:"job_description"`
	JobType        *string  `json:"job_type"`
	MinSalary      *float64 `json:"min_salary"`
	MaxSalary      *float64 `json:"max_salary"`
	Currency       *string  `json:"currency"`
	JobSource      *string  `json:"job_source"`
	IsExpired      bool     `json:"is_expired"`
}
