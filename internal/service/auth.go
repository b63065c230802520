package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"jobboard/internal/crypto"
	"jobboard/internal/models"
	"jobboard/internal/repository"
	"jobboard/internal/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
)

// refreshTokenTTL bounds how long a stored refresh token stays live in the
// database, independent of the expiry embedded in the token itself. The
// stored window is the authority for revocation.
const refreshTokenTTL = 7 * 24 * time.Hour

type AuthService interface {
	Register(name, email, password string) (*models.User, *models.TokenPair, error)
	Login(email, password string) (*models.TokenPair, error)
	Logout(userID uuid.UUID) error
	Refresh(refreshToken string) (*models.TokenPair, error)
	Profile(userID uuid.UUID) (*models.PublicUser, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *token.Manager
	logger *zap.Logger
}

func NewAuthService(users repository.UserRepository, tokens *token.Manager, logger *zap.Logger) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

func (s *authService) Register(name, email, password string) (*models.User, *models.TokenPair, error) {
	exists, err := s.users.EmailExists(email)
	if err != nil {
		s.logger.Error("Failed to check existing email", zap.Error(err))
		return nil, nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		return nil, nil, ErrEmailAlreadyExists
	}

	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: sql.NullString{String: passwordHash, Valid: true},
		AuthProvider: models.AuthProviderEmail,
	}

	if err := s.users.CreateUser(user); err != nil {
		// Two concurrent registrations can both pass the pre-check; the
		// unique index decides, surfaced as the same conflict.
		if repository.IsUniqueViolation(err) {
			return nil, nil, ErrEmailAlreadyExists
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	pair, err := s.issuePair(user.ID)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID.String()))
	return user, pair, nil
}

func (s *authService) Login(email, password string) (*models.TokenPair, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		s.logger.Error("Failed to get user by email", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	// Unknown email, provider-only account and wrong password all collapse
	// into the same error so responses can't be used to probe for emails.
	if user == nil || !user.PasswordHash.Valid {
		return nil, ErrInvalidCredentials
	}
	if !crypto.VerifyPassword(password, user.PasswordHash.String) {
		s.logger.Warn("Failed login attempt", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	pair, err := s.issuePair(user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()))
	return pair, nil
}

// Logout clears the stored refresh token. Idempotent: logging out an
// already logged-out user succeeds and changes nothing.
func (s *authService) Logout(userID uuid.UUID) error {
	if err := s.users.ClearRefreshToken(userID); err != nil {
		s.logger.Error("Failed to clear refresh token", zap.Error(err))
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

// Refresh exchanges a live refresh token for a new pair and rotates the
// stored token, invalidating the one just presented.
func (s *authService) Refresh(refreshToken string) (*models.TokenPair, error) {
	claims, err := s.tokens.Decode(refreshToken)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if claims.TokenType != token.KindRefresh {
		return nil, ErrUnauthorized
	}

	// The database lookup by raw token string is the authority on
	// liveness, not the decoded subject.
	user, err := s.users.GetUserByRefreshToken(refreshToken)
	if err != nil {
		s.logger.Error("Failed to look up refresh token", zap.Error(err))
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if user == nil {
		return nil, ErrUnauthorized
	}

	pair, err := s.issuePair(user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Refresh token rotated", zap.String("user_id", user.ID.String()))
	return pair, nil
}

func (s *authService) Profile(userID uuid.UUID) (*models.PublicUser, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		s.logger.Error("Failed to get user by id", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	pub := user.Public()
	return &pub, nil
}

// issuePair signs a fresh access/refresh pair and persists the refresh
// token, superseding whatever was stored before.
func (s *authService) issuePair(userID uuid.UUID) (*models.TokenPair, error) {
	accessToken, err := s.tokens.Issue(userID, token.KindAccess)
	if err != nil {
		s.logger.Error("Failed to sign access token", zap.Error(err))
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := s.tokens.Issue(userID, token.KindRefresh)
	if err != nil {
		s.logger.Error("Failed to sign refresh token", zap.Error(err))
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	if err := s.users.UpdateRefreshToken(userID, refreshToken, time.Now().Add(refreshTokenTTL)); err != nil {
		s.logger.Error("Failed to store refresh token", zap.Error(err))
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
	}, nil
}
