package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/async"
)

// StatusReader reports which game processes are running
type StatusReader interface {
	Snapshot(ctx context.Context) (model.GameStatus, error)
}

// SettingsReader loads the current settings
type SettingsReader interface {
	Load(ctx context.Context) (model.Settings, error)
}

// config holds internal HTTP server configuration
type config struct {
	addr string
	jobs *async.Jobs
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithJobs shares a job registry with the server
func WithJobs(jobs *async.Jobs) Option {
	return func(c *config) {
		c.jobs = jobs
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates the local control API server
func NewServer(
	ctx context.Context,
	status StatusReader,
	settings SettingsReader,
	actions map[string]Action,
	opts ...Option,
) (*Server, error) {
	cfg := &config{
		addr: "localhost:8731",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.jobs == nil {
		cfg.jobs = async.NewJobs()
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.Get("/health", handleHealth)

	h := &handler{
		status:   status,
		settings: settings,
		actions:  actions,
		jobs:     cfg.jobs,
	}
	router.Get("/status", h.handleStatus)
	router.Post("/actions/{name}", h.handleAction)
	router.Get("/jobs/{id}", h.handleJob)

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
