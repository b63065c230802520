package repository

import (
	"database/sql"

	"jobboard/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// ApplicationRepository persists job applications. Every read and write is
// scoped to the owning user; rows of other users behave as if absent.
type ApplicationRepository interface {
	CreateApplication(app *models.Application) error
	GetApplicationsByUser(userID uuid.UUID) ([]*models.Application, error)
	GetApplicationByID(id, userID uuid.UUID) (*models.Application, error)
	UpdateApplication(app *models.Application) error
	UpdateApplicationStatus(id, userID uuid.UUID, status string) (bool, error)
	SoftDeleteApplication(id, userID uuid.UUID) (bool, error)
}

const applicationColumns = `id, user_id, job_id, status, applied_at, offer_received, attempt_number, notes, created_at, updated_at, deleted_at`

type applicationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewApplicationRepository(db *sqlx.DB, logger *zap.Logger) ApplicationRepository {
	return &applicationRepository{db: db, logger: logger}
}

func (r *applicationRepository) CreateApplication(app *models.Application) error {
	query := `INSERT INTO applications (id, user_id, job_id, status, applied_at, offer_received, attempt_number, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	          RETURNING created_at, updated_at`
	return r.db.QueryRowx(query, app.ID, app.UserID, app.JobID, app.Status, app.AppliedAt,
		app.OfferReceived, app.AttemptNumber, app.Notes).Scan(&app.CreatedAt, &app.UpdatedAt)
}

func (r *applicationRepository) GetApplicationsByUser(userID uuid.UUID) ([]*models.Application, error) {
	apps := []*models.Application{}
	query := `SELECT ` + applicationColumns + ` FROM applications
	          WHERE user_id = $1 AND deleted_at IS NULL
	          ORDER BY applied_at DESC`
	err := r.db.Select(&apps, query, userID)
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) GetApplicationByID(id, userID uuid.UUID) (*models.Application, error) {
	var app models.Application
	query := `SELECT ` + applicationColumns + ` FROM applications
	          WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`
	err := r.db.Get(&app, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Application not found
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) UpdateApplication(app *models.Application) error {
	query := `UPDATE applications SET status = $1, offer_received = $2, attempt_number = $3,
	                                  notes = $4, updated_at = NOW()
	          WHERE id = $5 AND user_id = $6 AND deleted_at IS NULL`
	_, err := r.db.Exec(query, app.Status, app.OfferReceived, app.AttemptNumber,
		app.Notes, app.ID, app.UserID)
	return err
}

// UpdateApplicationStatus flips only the status column. The bool reports
// whether a row was actually touched.
func (r *applicationRepository) UpdateApplicationStatus(id, userID uuid.UUID, status string) (bool, error) {
	query := `UPDATE applications SET status = $1, updated_at = NOW()
	          WHERE id = $2 AND user_id = $3 AND deleted_at IS NULL`
	res, err := r.db.Exec(query, status, id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *applicationRepository) SoftDeleteApplication(id, userID uuid.UUID) (bool, error) {
	query := `UPDATE applications SET deleted_at = NOW(), updated_at = NOW()
	          WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`
	res, err := r.db.Exec(query, id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
