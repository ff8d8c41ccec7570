package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/cryptobook/internal/logging"
	"github.com/ziadkadry99/cryptobook/internal/metrics"
)

const (
	// DefaultRequestTimeout bounds every non-streaming request.
	DefaultRequestTimeout = 60 * time.Second

	// DefaultShutdownTimeout is how long in-flight requests get to finish.
	DefaultShutdownTimeout = 5 * time.Second
)

// Config holds server configuration.
type Config struct {
	Port            int
	AllowAll        bool          // allow all CORS origins (dev mode)
	RequestTimeout  time.Duration // zero means DefaultRequestTimeout
	ShutdownTimeout time.Duration // zero means DefaultShutdownTimeout
}

// Server hosts the book: common middleware, health and metrics endpoints, and
// whatever feature packages register on its router.
type Server struct {
	cfg    Config
	log    *slog.Logger
	router chi.Router

	mu      sync.RWMutex
	running bool
}

// New creates a server. gatherer may be nil, in which case /metrics is not
// served.
func New(cfg Config, logger *slog.Logger, gatherer prometheus.Gatherer) *Server {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	if logger == nil {
		logger = logging.Discard()
	}

	s := &Server{cfg: cfg, log: logger}
	s.router = s.buildRouter(gatherer)
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter(gatherer prometheus.Gatherer) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(TimeoutUnlessUpgrade(s.cfg.RequestTimeout))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(gatherer))
	}

	// Page routes are registered by feature packages via RegisterRoutes.
	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// IsRunning reports whether the listener is bound and serving.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Serve listens on the configured port and blocks until ctx is canceled, then
// shuts down gracefully. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	s.log.Info("cryptobook server listening", "addr", listener.Addr().String())

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.setRunning(true)
		defer s.setRunning(false)

		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		s.log.Info("shutting down server", "grace_period", s.cfg.ShutdownTimeout)
		start := time.Now()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Error("server shutdown error", "error", err)
		}
		s.log.Info("server shutdown complete", "duration", time.Since(start))
		return nil
	})

	return g.Wait()
}

func (s *Server) setRunning(v bool) {
	s.mu.Lock()
	s.running = v
	s.mu.Unlock()
}
