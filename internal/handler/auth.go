package handler

import (
	"errors"
	"net/http"

	"jobboard/internal/middleware"
	"jobboard/internal/models"
	"jobboard/internal/response"
	"jobboard/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
	Refresh(c *gin.Context)
	Me(c *gin.Context)
}

type authHandler struct {
	authService service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService service.AuthService, logger *zap.Logger) AuthHandler {
	return &authHandler{authService: authService, logger: logger}
}

type registerResponse struct {
	User models.PublicUser `json:"user"`
	models.TokenPair
}

// Register handles POST /api/users
func (h *authHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, pair, err := h.authService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			response.Error(c, http.StatusConflict, "Email already registered")
			return
		}
		h.logger.Error("Failed to register user", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	response.Success(c, http.StatusCreated, registerResponse{
		User:      user.Public(),
		TokenPair: *pair,
	})
}

// Login handles POST /api/login
func (h *authHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	pair, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Error("Failed to login user", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, pair)
}

// Logout handles POST /api/logout. Requires a bearer token; calling it
// twice succeeds twice.
func (h *authHandler) Logout(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := h.authService.Logout(userID); err != nil {
		h.logger.Error("Failed to logout user", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to logout")
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// Refresh handles POST /api/refresh_token
func (h *authHandler) Refresh(c *gin.Context) {
	var req models.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	pair, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			response.Error(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Error("Failed to refresh tokens", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to refresh tokens")
		return
	}

	response.Success(c, http.StatusOK, pair)
}

// Me handles GET /api/me
func (h *authHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	user, err := h.authService.Profile(userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("Failed to load profile", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, user)
}
