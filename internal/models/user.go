package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	AuthProviderEmail = "email"
)

// User is a row in the users table, authentication columns included.
// PasswordHash is NULL for accounts created through an external provider.
type User struct {
	ID                    uuid.UUID      `db:"id"`
	Name                  string         `db:"name"`
	Email                 string         `db:"email"`
	PasswordHash          sql.NullString `db:"password_hash"`
	AuthProvider          string         `db:"auth_provider"`
	AvatarURL             sql.NullString `db:"avatar_url"`
	RefreshToken          sql.NullString `db:"refresh_token"`
	RefreshTokenExpiresAt sql.NullTime   `db:"refresh_token_expires_at"`
	CreatedAt             time.Time      `db:"created_at"`
	UpdatedAt             time.Time      `db:"updated_at"`
}

// PublicUser is the user shape exposed over the API. No credential fields.
type PublicUser struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	AuthProvider string    `json:"auth_provider"`
	AvatarURL    *string   `json:"avatar_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Public strips the credential columns off a User.
func (u *User) Public() PublicUser {
	pub := PublicUser{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		AuthProvider: u.AuthProvider,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if u.AvatarURL.Valid {
		pub.AvatarURL = &u.AvatarURL.String
	}
	return pub
}

// TokenPair is the response shape of every token-issuing endpoint.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
