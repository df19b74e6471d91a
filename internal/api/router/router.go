package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/radianhq/outreach/internal/campaign"
	httpmiddleware "github.com/radianhq/outreach/internal/http/middleware"
	"github.com/radianhq/outreach/internal/leads"
	"github.com/radianhq/outreach/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	LeadsHandler       *leads.Handler
	CampaignHandler    *campaign.Handler
	ProgressHandler    *campaign.ProgressHandler
	MetricsHandler     http.Handler
	OperatorJWTSecret  string
	CORSAllowedOrigins []string
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

	// Public endpoints
	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}
	if cfg.ProgressHandler != nil {
		r.Get("/campaigns/ws", cfg.ProgressHandler.HandleWebSocket)
	}

	// Operator endpoints; protected when a JWT secret is configured.
	r.Group(func(operator chi.Router) {
		operator.Use(httpmiddleware.OperatorJWT(cfg.OperatorJWTSecret))
		operator.Use(httpmiddleware.RateLimit(2, 5))

		if cfg.LeadsHandler != nil {
			operator.Route("/leads", func(r chi.Router) {
				r.Post("/upload", cfg.LeadsHandler.Upload)
				r.Get("/", cfg.LeadsHandler.List)
			})
		}
		if cfg.CampaignHandler != nil {
			operator.Post("/campaigns/run", cfg.CampaignHandler.Run)
		}
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
