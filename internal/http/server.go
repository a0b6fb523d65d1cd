// Package http provides the HTTP server and shared middleware for the API.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/apikeys/internal/config"
	keysHTTP "github.com/allisson/apikeys/internal/keys/http"
	keysUseCase "github.com/allisson/apikeys/internal/keys/usecase"
	"github.com/allisson/apikeys/internal/metrics"
)

// Server represents the HTTP API server.
type Server struct {
	addr   string
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
	server *http.Server
}

// NewServer creates a new HTTP server and registers all routes.
func NewServer(
	cfg *config.Config,
	db *sql.DB,
	applicationHandler *keysHTTP.ApplicationHandler,
	apiKeyHandler *keysHTTP.APIKeyHandler,
	verifyHandler *keysHTTP.VerifyHandler,
	apiKeyUseCase keysUseCase.APIKeyUseCase,
	metricsProvider *metrics.Provider,
	logger *slog.Logger,
) *Server {
	s := &Server{
		addr:   fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		db:     db,
		logger: logger,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	// Health and readiness endpoints
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	{
		applications := v1.Group("/applications")
		{
			applications.POST("", applicationHandler.CreateHandler)
			applications.GET("", applicationHandler.ListHandler)
			applications.GET("/:id", applicationHandler.GetHandler)
			applications.PUT("/:id", applicationHandler.UpdateHandler)
			applications.DELETE("/:id", applicationHandler.DeleteHandler)

			applications.POST("/:id/keys", apiKeyHandler.IssueHandler)
			applications.GET("/:id/keys", apiKeyHandler.ListHandler)
			applications.DELETE("/:id/keys/:key_id", apiKeyHandler.RevokeHandler)
		}

		v1.POST("/verify", verifyHandler.VerifyHandler)

		protected := v1.Group("/protected")
		protected.Use(keysHTTP.RequireAPIKey(apiKeyUseCase, logger))
		{
			protected.GET("", verifyHandler.ProtectedHandler)
		}
	}

	s.router = router
	return s
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting http server", slog.String("addr", s.addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can reach the database.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
