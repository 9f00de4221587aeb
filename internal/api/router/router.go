package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/wavecrest/lead-intake/internal/http/middleware"
	"github.com/wavecrest/lead-intake/internal/leads"
	"github.com/wavecrest/lead-intake/pkg/logging"
)

// livenessBanner is returned on the root path.
const livenessBanner = "lead-intake is running"

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	LeadsHandler       *leads.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Rate limit for the public submit endpoint. Disabled when
	// SubmitRateLimit is zero.
	SubmitRateLimit float64
	SubmitRateBurst int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(livenessBanner))
	})
	r.Get("/health", cfg.LeadsHandler.Health)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		submit := api.With()
		if cfg.SubmitRateLimit > 0 {
			submit = api.With(httpmiddleware.RateLimit(cfg.SubmitRateLimit, cfg.SubmitRateBurst))
		}
		submit.Post("/submit", cfg.LeadsHandler.Submit)

		api.Get("/leads", cfg.LeadsHandler.List)
		api.Delete("/leads/{id}", cfg.LeadsHandler.Delete)
	})

	return r
}
