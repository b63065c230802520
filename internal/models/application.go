package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Application statuses form a fixed vocabulary enforced both here and by a
// CHECK constraint on the table.
const (
	ApplicationStatusApplied      = "applied"
	ApplicationStatusScreening    = "screening"
	ApplicationStatusInterviewing = "interviewing"
	ApplicationStatusOffer        = "offer"
	ApplicationStatusAccepted     = "accepted"
	ApplicationStatusRejected     = "rejected"
	ApplicationStatusWithdrawn    = "withdrawn"
)

var validApplicationStatuses = map[string]bool{
	ApplicationStatusApplied:      true,
	ApplicationStatusScreening:    true,
	ApplicationStatusInterviewing: true,
	ApplicationStatusOffer:        true,
	ApplicationStatusAccepted:     true,
	ApplicationStatusRejected:     true,
	ApplicationStatusWithdrawn:    true,
}

func IsValidApplicationStatus(status string) bool {
	return validApplicationStatuses[status]
}

// Application is a row in the applications table: one user's pursuit of one
// job posting. Endpoints serialize PublicApplication, never this struct.
type Application struct {
	ID            uuid.UUID      `db:"id"`
	UserID        uuid.UUID      `db:"user_id"`
	JobID         uuid.UUID      `db:"job_id"`
	Status        string         `db:"status"`
	AppliedAt     time.Time      `db:"applied_at"`
	OfferReceived bool           `db:"offer_received"`
	AttemptNumber int            `db:"attempt_number"`
	Notes         sql.NullString `db:"notes"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	DeletedAt     sql.NullTime   `db:"deleted_at"`
}

type PublicApplication struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	JobID         uuid.UUID `json:"job_id"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"applied_at"`
	OfferReceived bool      `json:"offer_received"`
	AttemptNumber int       `json:"attempt_number"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (a *Application) Public() PublicApplication {
	return PublicApplication{
		ID:            a.ID,
		UserID:        a.UserID,
		JobID:         a.JobID,
		Status:        a.Status,
		AppliedAt:     a.AppliedAt,
		OfferReceived: a.OfferReceived,
		AttemptNumber: a.AttemptNumber,
		Notes:         stringPtr(a.Notes),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

type CreateApplicationRequest struct {
	JobID  uuid.UUID `json:"job_id" binding:"required"`
	Status string    `json:"status"`
	Notes  *string   `json:"notes"`
}

type UpdateApplicationRequest struct {
	Status        string  `json:"status" binding:"required"`
	OfferReceived bool    `json:"offer_received"`
	AttemptNumber int     `json:"attempt_number" binding:"required,min=1"`
	Notes         *string `json:"notes"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
