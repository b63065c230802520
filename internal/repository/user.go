package repository

import (
	"database/sql"
	"time"

	"jobboard/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// UserRepository persists users together with their credential columns.
// The refresh-token operations form the single-session store: one live
// refresh token per user, overwritten on every rotation.
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uuid.UUID) (*models.User, error)
	EmailExists(email string) (bool, error)
	UpdateRefreshToken(userID uuid.UUID, token string, expiresAt time.Time) error
	GetUserByRefreshToken(token string) (*models.User, error)
	ClearRefreshToken(userID uuid.UUID) error
}

const userColumns = `id, name, email, password_hash, auth_provider, avatar_url, refresh_token, refresh_token_expires_at, created_at, updated_at`

type userRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewUserRepository(db *sqlx.DB, logger *zap.Logger) UserRepository {
	return &userRepository{db: db, logger: logger}
}

func (r *userRepository) CreateUser(user *models.User) error {
	query := `INSERT INTO users (id, name, email, password_hash, auth_provider, avatar_url, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	          RETURNING created_at, updated_at`
	return r.db.QueryRowx(query, user.ID, user.Name, user.Email, user.PasswordHash,
		user.AuthProvider, user.AvatarURL).Scan(&user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	err := r.db.Get(&user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // User not found
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	err := r.db.Get(&user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) EmailExists(email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	err := r.db.Get(&exists, query, email)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpdateRefreshToken replaces the stored refresh token for the user.
// Single-row update, last writer wins: two concurrent rotations race and
// one of them ends up silently invalidated. Accepted behavior.
func (r *userRepository) UpdateRefreshToken(userID uuid.UUID, token string, expiresAt time.Time) error {
	query := `UPDATE users SET refresh_token = $1, refresh_token_expires_at = $2, updated_at = NOW() WHERE id = $3`
	_, err := r.db.Exec(query, token, expiresAt, userID)
	return err
}

// GetUserByRefreshToken resolves the owner of a live refresh token. The
// stored expiry is checked in SQL; a missing, superseded or expired token
// all come back as (nil, nil).
func (r *userRepository) GetUserByRefreshToken(token string) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE refresh_token = $1 AND refresh_token_expires_at > NOW()`
	err := r.db.Get(&user, query, token)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ClearRefreshToken(userID uuid.UUID) error {
	query := `UPDATE users SET refresh_token = NULL, refresh_token_expires_at = NULL, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(query, userID)
	return err
}
