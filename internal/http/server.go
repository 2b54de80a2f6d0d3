// Package http provides the HTTP server and route registration.
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

	authHTTP "github.com/cargoconnect/api/internal/auth/http"
	authUseCase "github.com/cargoconnect/api/internal/auth/usecase"
	logisticsHTTP "github.com/cargoconnect/api/internal/logistics/http"
	"github.com/cargoconnect/api/internal/metrics"
)

// Server represents the API HTTP server.
type Server struct {
	db     *sql.DB
	router *gin.Engine
	server *http.Server
	logger *slog.Logger
	host   string
	port   int
}

// NewServer creates a new HTTP server. The router must be configured with
// SetupRouter before Start is called.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		host:   host,
		port:   port,
	}
}

// RouterConfig holds the handlers and middleware settings used to build the
// route table.
type RouterConfig struct {
	AuthUseCase authUseCase.AuthUseCase
	AuthHandler *authHTTP.AuthHandler

	ClientHandler         *logisticsHTTP.ClientHandler
	DriverHandler         *logisticsHTTP.DriverHandler
	VehicleHandler        *logisticsHTTP.VehicleHandler
	CargoHandler          *logisticsHTTP.CargoHandler
	OrderHandler          *logisticsHTTP.OrderHandler
	TransportationHandler *logisticsHTTP.TransportationHandler
	CompanyHandler        *logisticsHTTP.CompanyHandler

	// Metrics middleware is skipped when MetricsProvider is nil.
	MetricsProvider  *metrics.Provider
	MetricsNamespace string

	CORSEnabled      bool
	CORSAllowOrigins string

	RateLimitEnabled        bool
	RateLimitRequestsPerSec float64
	RateLimitBurst          int

	RateLimitLoginEnabled        bool
	RateLimitLoginRequestsPerSec float64
	RateLimitLoginBurst          int
}

// SetupRouter builds the Gin router with all middleware and routes.
func (s *Server) SetupRouter(cfg RouterConfig) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(cfg.MetricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	// Login and refresh are reachable without a token; both are rate
	// limited per IP since they are the credential-guessing surface.
	auth := v1.Group("/auth")
	if cfg.RateLimitLoginEnabled {
		loginLimiter := authHTTP.LoginRateLimitMiddleware(
			cfg.RateLimitLoginRequestsPerSec,
			cfg.RateLimitLoginBurst,
			s.logger,
		)
		auth.POST("/login", loginLimiter, cfg.AuthHandler.LoginHandler)
		auth.POST("/refresh", loginLimiter, cfg.AuthHandler.RefreshHandler)
	} else {
		auth.POST("/login", cfg.AuthHandler.LoginHandler)
		auth.POST("/refresh", cfg.AuthHandler.RefreshHandler)
	}

	// Registration is open for self-service roles; the optional middleware
	// forwards the acting principal when an admin creates elevated accounts.
	auth.POST("/register",
		authHTTP.OptionalAuthenticationMiddleware(cfg.AuthUseCase, s.logger),
		cfg.AuthHandler.RegisterHandler)

	// Everything below requires a valid access token.
	protected := v1.Group("")
	protected.Use(authHTTP.AuthenticationMiddleware(cfg.AuthUseCase, s.logger))
	if cfg.RateLimitEnabled {
		protected.Use(authHTTP.RateLimitMiddleware(
			cfg.RateLimitRequestsPerSec,
			cfg.RateLimitBurst,
			s.logger,
		))
	}

	protected.POST("/auth/logout", cfg.AuthHandler.LogoutHandler)
	protected.GET("/auth/me", cfg.AuthHandler.MeHandler)

	registerResourceRoutes(protected.Group("/clients"), cfg.ClientHandler)
	registerResourceRoutes(protected.Group("/drivers"), cfg.DriverHandler)
	registerResourceRoutes(protected.Group("/vehicles"), cfg.VehicleHandler)
	registerResourceRoutes(protected.Group("/cargos"), cfg.CargoHandler)
	registerResourceRoutes(protected.Group("/companies"), cfg.CompanyHandler)

	orders := protected.Group("/orders")
	registerResourceRoutes(orders, cfg.OrderHandler)
	orders.POST("/:id/cargos/:cargoId", cfg.OrderHandler.AttachCargoHandler)
	orders.DELETE("/:id/cargos/:cargoId", cfg.OrderHandler.DetachCargoHandler)

	transportations := protected.Group("/transportations")
	registerResourceRoutes(transportations, cfg.TransportationHandler)
	transportations.POST("/:id/companies/:companyId", cfg.TransportationHandler.LinkCompanyHandler)
	transportations.DELETE("/:id/companies/:companyId", cfg.TransportationHandler.UnlinkCompanyHandler)

	s.router = router
}

// resourceHandler is the route surface shared by all logistics handlers.
type resourceHandler interface {
	ListHandler(c *gin.Context)
	ListDeletedHandler(c *gin.Context)
	GetHandler(c *gin.Context)
	CreateHandler(c *gin.Context)
	UpdateHandler(c *gin.Context)
	DeleteHandler(c *gin.Context)
	RestoreHandler(c *gin.Context)
}

// registerResourceRoutes mounts the CRUD + soft-delete route set on a group.
func registerResourceRoutes(group *gin.RouterGroup, handler resourceHandler) {
	group.GET("", handler.ListHandler)
	group.GET("/deleted", handler.ListDeletedHandler)
	group.GET("/:id", handler.GetHandler)
	group.POST("", handler.CreateHandler)
	group.PUT("/:id", handler.UpdateHandler)
	group.DELETE("/:id", handler.DeleteHandler)
	group.POST("/restore/:id", handler.RestoreHandler)
}

// Handler returns the configured router. Useful for serving the API from a
// test server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can take traffic. The database
// is the only hard dependency.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}

	if s.db == nil {
		components["database"] = "error"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			components["database"] = "error"
		}
	}

	if components["database"] != "ok" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.host, s.port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
