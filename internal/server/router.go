package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/devfolio/devfolio/internal/auth"
	"github.com/devfolio/devfolio/internal/handler"
	"github.com/devfolio/devfolio/internal/metrics"
	"github.com/devfolio/devfolio/internal/middleware"
	"github.com/devfolio/devfolio/internal/storage"
)

// RouterConfig bundles the dependencies the router needs. The store is
// injected rather than global so tests can build a router over a fresh
// store per test.
type RouterConfig struct {
	Store              *storage.Store
	Verifier           auth.Verifier
	Logger             *slog.Logger
	Metrics            metrics.Recorder
	Snapshotter        metrics.Snapshotter
	CORSAllowedOrigins []string
	MaxRequestBodySize int64
}

// NewRouter configures the chi router with all routes and middleware.
func NewRouter(cfg RouterConfig) *chi.Mux {
	recorder := cfg.Metrics
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	h := handler.New()
	healthHandler := handler.NewHealthHandler()
	projectHandler := handler.NewProjectHandler(cfg.Store, cfg.Logger)
	waitlistHandler := handler.NewWaitlistHandler(cfg.Store, cfg.Logger, recorder)
	adminHandler := handler.NewAdminHandler(cfg.Store, cfg.Logger, recorder)
	metricsHandler := handler.NewMetricsHandler(cfg.Snapshotter)

	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recoverer(cfg.Logger))

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", middleware.AdminKeyHeader, middleware.RequestIDHeader},
			ExposedHeaders: []string{middleware.RequestIDHeader},
			MaxAge:         86400,
		}))
	}

	if cfg.MaxRequestBodySize > 0 {
		r.Use(limitRequestBody(cfg.MaxRequestBodySize))
	}

	r.Get("/", h.Root)
	r.Get("/healthz", healthHandler.Healthz)

	r.Route("/api", func(r chi.Router) {
		// Public surface
		r.Post("/waitlist", waitlistHandler.Join)
		r.Get("/projects", projectHandler.List)
		r.Get("/projects/{id}", projectHandler.Get)

		// Admin surface, gated on X-API-Key
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminAuth(middleware.AdminAuthConfig{
				Logger:   cfg.Logger,
				Verifier: cfg.Verifier,
				Metrics:  recorder,
			}))

			r.Get("/projects", adminHandler.ListProjects)
			r.Post("/projects", adminHandler.CreateProject)
			r.Put("/projects/{id}", adminHandler.UpdateProject)
			r.Delete("/projects/{id}", adminHandler.DeleteProject)
			r.Get("/waitlist", adminHandler.ListWaitlist)
			r.Get("/metrics", metricsHandler.Metrics)
		})
	})

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}

// limitRequestBody caps request body reads at n bytes.
func limitRequestBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
