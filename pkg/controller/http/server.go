package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/mctl/pkg/domain/interfaces"
	"github.com/m-mizutani/mctl/pkg/utils/safe"
	"github.com/rs/cors"
	"golang.org/x/time/rate"
)

const (
	// DefaultActionRate is the per-client token refill rate for POST /api/data
	DefaultActionRate rate.Limit = 5
	// DefaultActionBurst is the per-client bucket size for POST /api/data
	DefaultActionBurst = 10

	maxRequestBodyBytes = 1 << 20
)

// Server represents the HTTP server
type Server struct {
	router      *chi.Mux
	dashboardUC interfaces.DashboardUseCases
	corsOrigins []string
	actionRate  rate.Limit
	actionBurst int
}

// Options is a functional option for Server
type Options func(*Server)

// WithCORSOrigins sets the origins allowed to call the API from a browser.
// An empty list keeps cross-origin requests disabled.
func WithCORSOrigins(origins []string) Options {
	return func(s *Server) {
		s.corsOrigins = origins
	}
}

// WithActionRateLimit sets the per-client token bucket for actions. A
// non-positive limit disables rate limiting.
func WithActionRateLimit(limit rate.Limit, burst int) Options {
	return func(s *Server) {
		s.actionRate = limit
		s.actionBurst = burst
	}
}

// New creates a new HTTP server serving the dashboard API
func New(uc interfaces.DashboardUseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:      r,
		dashboardUC: uc,
		actionRate:  DefaultActionRate,
		actionBurst: DefaultActionBurst,
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	r.Use(panicRecoveryMiddleware)
	if len(s.corsOrigins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: s.corsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", requestIDHeader},
			ExposedHeaders: []string{requestIDHeader},
		}).Handler)
	}

	ctrl := &dashboardController{uc: s.dashboardUC}
	r.Get("/api/data", ctrl.handleGetData)
	if s.actionRate > 0 {
		r.With(newRateLimiter(s.actionRate, s.actionBurst).Middleware).Post("/api/data", ctrl.handlePostData)
	} else {
		r.Post("/api/data", ctrl.handlePostData)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		safe.Write(r.Context(), w, []byte("OK"))
	})

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
