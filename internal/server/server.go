package server

import (
	"context"
	"errors"
	"net/http"

	"jobboard/internal/config"
	"jobboard/internal/handler"
	"jobboard/internal/middleware"
	"jobboard/internal/repository"
	"jobboard/internal/service"
	"jobboard/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	db         *sqlx.DB
	cfg        *config.Config
	logger     *zap.Logger
}

func NewServer(db *sqlx.DB, cfg *config.Config, logger *zap.Logger) *Server {
	router := gin.Default()

	s := &Server{
		router: router,
		httpServer: &http.Server{
			Addr:    cfg.Server.Port,
			Handler: router,
		},
		db:     db,
		cfg:    cfg,
		logger: logger,
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	tokens := token.NewManager(s.cfg.JWTSecret, s.cfg.AccessTokenTTL(), s.cfg.RefreshTokenTTL())

	userRepo := repository.NewUserRepository(s.db, s.logger)
	jobRepo := repository.NewJobRepository(s.db, s.logger)
	applicationRepo := repository.NewApplicationRepository(s.db, s.logger)

	authService := service.NewAuthService(userRepo, tokens, s.logger)
	jobService := service.NewJobService(jobRepo, s.logger)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, s.logger)

	authHandler := handler.NewAuthHandler(authService, s.logger)
	jobHandler := handler.NewJobHandler(jobService, s.logger)
	applicationHandler := handler.NewApplicationHandler(applicationService, s.logger)

	// Ping route for health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")
	api.POST("/users", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/refresh_token", authHandler.Refresh)
	api.GET("/jobs", jobHandler.ListJobs)
	api.GET("/jobs/:job_id", jobHandler.GetJob)

	// Routes behind the bearer check
	authRequired := s.router.Group("/api")
	authRequired.Use(middleware.Auth(tokens, s.logger))
	{
		authRequired.POST("/logout", authHandler.Logout)
		authRequired.GET("/me", authHandler.Me)
		authRequired.POST("/jobs", jobHandler.CreateJob)
		authRequired.PUT("/jobs/:job_id", jobHandler.UpdateJob)
		authRequired.DELETE("/jobs/:job_id", jobHandler.DeleteJob)
		authRequired.GET("/applications", applicationHandler.ListApplications)
		authRequired.POST("/applications", applicationHandler.CreateApplication)
		authRequired.GET("/applications/:application_id", applicationHandler.GetApplication)
		authRequired.PUT("/applications/:application_id", applicationHandler.UpdateApplication)
		authRequired.PATCH("/applications/:application_id/status", applicationHandler.UpdateApplicationStatus)
		authRequired.DELETE("/applications/:application_id", applicationHandler.DeleteApplication)
	}
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run() {
	s.logger.Info("Server starting", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Fatal("Server failed to start", zap.Error(err))
	}
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
