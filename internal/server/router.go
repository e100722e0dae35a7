package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"jenkins-pipeline-demo/internal/calculator"
	"jenkins-pipeline-demo/internal/config"
	"jenkins-pipeline-demo/internal/handlers"
	"jenkins-pipeline-demo/internal/observability"
)

func NewRouter(cfg *config.Config) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)
	r.Use(observability.MetricsMiddleware)

	r.Handle("/metrics", observability.PrometheusHandler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Group(func(r chi.Router) {
			if cfg.RateLimitEnabled() {
				r.Use(RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
			}
			calculator.RegisterRoutes(r)
		})
	})

	return r
}
