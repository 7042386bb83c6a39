// Package server wires the HTTP API: routing, middleware and lifecycle.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/SinlessRook/BayMax-Backend/internal/server/handlers"
	"github.com/SinlessRook/BayMax-Backend/pkg/emotion"
	"github.com/SinlessRook/BayMax-Backend/pkg/health"
	"github.com/SinlessRook/BayMax-Backend/pkg/logger"
)

// Server is the HTTP server for the emotion analysis API
type Server struct {
	config        *Config
	logger        *logger.Logger
	analyzer      *emotion.Analyzer
	healthChecker *health.HealthChecker
	httpServer    *http.Server
}

// New creates a new server from its dependencies
func New(config *Config, analyzer *emotion.Analyzer, healthChecker *health.HealthChecker, log *logger.Logger) (*Server, error) {
	if config == nil {
		config = GetDefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}
	if analyzer == nil {
		return nil, fmt.Errorf("analyzer is required")
	}
	if log == nil {
		log = logger.GetDefault()
	}

	s := &Server{
		config:        config,
		logger:        log,
		analyzer:      analyzer,
		healthChecker: healthChecker,
	}

	s.httpServer = &http.Server{
		Addr:         config.GetAddress(),
		Handler:      s.buildHandler(),
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return s, nil
}

// buildHandler assembles the route table and middleware stack
func (s *Server) buildHandler() http.Handler {
	predictHandler := handlers.NewPredictHandler(s.analyzer, s.logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/", predictHandler.Home)
	mux.HandleFunc("/predict", predictHandler.Predict)
	mux.HandleFunc(s.config.MetricsPath, predictHandler.Metrics)

	if s.healthChecker != nil {
		mux.HandleFunc(s.config.HealthCheckPath, s.healthChecker.Handler())
	}

	middlewares := []Middleware{
		Recovery(s.logger),
		SecurityHeaders(),
		RequestID(s.config.RequestIDHeader),
		Logging(s.logger),
	}

	if s.config.EnableCORS {
		middlewares = append(middlewares, CORS(s.config.AllowedOrigins, s.config.AllowedMethods, s.config.AllowedHeaders))
	}
	if s.config.EnableRateLimit {
		middlewares = append(middlewares, RateLimit(s.config.RateLimit, s.config.RateLimitBurst))
	}

	middlewares = append(middlewares,
		MaxRequestSize(s.config.MaxRequestSize),
		ContentType(),
	)

	return MiddlewareStack(middlewares...)(mux)
}

// Start runs the server until the context is canceled or a shutdown signal
// arrives, then drains connections within the configured shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.WithField("address", s.config.GetAddress()).Info("server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-sigCh:
		s.logger.WithField("signal", sig.String()).Info("shutdown signal received")
	case <-ctx.Done():
		s.logger.Info("server context canceled")
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// Handler exposes the assembled handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
