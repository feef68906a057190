// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"time"

	"mlcatalog-api/api/middleware"
	"mlcatalog-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window
	RateWindow time.Duration // rate limit window
}

func newRouter() chi.Router {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"}, // Allow all origins in development
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	return router
}

func newHumaAPI(router chi.Router) huma.API {
	config := huma.DefaultConfig("ML Catalog API", "1.0.0")
	config.Info.Description = "API for managing ML model catalog entries and external enrichment"

	// OpenAPI spec at /openapi.json, Swagger UI at /docs
	return humachi.New(router, config)
}

// NewAPI creates a Huma API backed by a Chi router with CORS enabled.
func NewAPI() (huma.API, chi.Router) {
	router := newRouter()
	return newHumaAPI(router), router
}

// NewAPIWithMiddleware creates the API with request logging and rate
// limiting applied according to cfg. Zero-valued fields disable the
// corresponding middleware.
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := newRouter()

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	return newHumaAPI(router), router
}
