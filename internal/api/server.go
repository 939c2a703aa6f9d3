package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/demoworks/surveyd/internal/api/auth"
	"github.com/demoworks/surveyd/internal/logger"
	"github.com/demoworks/surveyd/internal/metrics"
	"github.com/demoworks/surveyd/pkg/survey/store"
)

// Server provides the HTTP server for the REST API.
//
// The server exposes health probes, the Prometheus scrape endpoint and the
// authenticated survey API, and supports graceful shutdown with a
// configurable timeout.
type Server struct {
	server         *http.Server
	store          store.Store
	verifier       *auth.Verifier
	config         APIConfig
	metricsEnabled bool
	shutdownOnce   sync.Once
}

// NewServer creates a new API HTTP server.
//
// The server is created in a stopped state. Call Start() to begin serving
// requests.
//
// The token verifier is created internally from the config. The secret must
// be configured via config.Auth.Secret or the SURVEYD_AUTH_SECRET environment
// variable and must be at least 32 characters long.
func NewServer(config APIConfig, metricsCfg metrics.Config, st store.Store) (*Server, error) {
	config.applyDefaults()

	verifier, err := auth.NewVerifier(auth.Config{
		Secret: config.GetAuthSecret(),
		Issuer: config.Auth.Issuer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create token verifier: %w", err)
	}

	router := NewRouter(st, verifier, config.RequestTimeout, metricsCfg)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.Port),
		Handler:      router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return &Server{
		server:         server,
		store:          st,
		verifier:       verifier,
		config:         config,
		metricsEnabled: metricsCfg.Enabled,
	}, nil
}

// Start starts the API HTTP server and blocks until the context is cancelled
// or an error occurs.
//
// When the context is cancelled, Start initiates graceful shutdown and
// returns nil on success.
func (s *Server) Start(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		logger.Info("API server listening", "port", s.config.Port)
		logger.Debug("API endpoints available",
			"health", fmt.Sprintf("http://localhost:%d/health", s.config.Port),
			"ready", fmt.Sprintf("http://localhost:%d/health/ready", s.config.Port),
		)
		if s.metricsEnabled {
			logger.Debug("Metrics endpoint available",
				"metrics", fmt.Sprintf("http://localhost:%d/metrics", s.config.Port))
		}

		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			select {
			case errChan <- err:
			default:
				// Context was cancelled, error is not needed
			}
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("API server shutdown signal received")
		// Create a fresh context for graceful shutdown; the cancelled ctx
		// would abort the shutdown immediately.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Stop(shutdownCtx)
	case err := <-errChan:
		return fmt.Errorf("API server failed: %w", err)
	}
}

// Stop initiates graceful shutdown of the API server.
//
// Stop is safe to call multiple times and safe to call concurrently with
// Start().
func (s *Server) Stop(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		logger.Debug("API server shutdown initiated")

		if err := s.server.Shutdown(ctx); err != nil {
			shutdownErr = fmt.Errorf("API server shutdown error: %w", err)
			logger.Error("API server shutdown error", "error", err)
		} else {
			logger.Info("API server stopped gracefully")
		}
	})
	return shutdownErr
}

// Port returns the TCP port the server is listening on.
func (s *Server) Port() int {
	return s.config.Port
}
