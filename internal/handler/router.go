package handler

import (
	"net/http"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/config"
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/middleware"
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/observability"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewRouter builds the public HTTP router serving the GraphQL endpoint.
func NewRouter(cfg config.Config, exec Executor) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(observability.MetricsMiddleware(cfg.ServiceName))
	r.Use(middleware.Recovery())
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}
	if cfg.RateLimitRequests > 0 {
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	h := NewGraphQLHandler(exec)

	r.Group(func(p chi.Router) {
		if cfg.AuthEnabled {
			p.Use(middleware.JWT([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.JWTAudience))
		}
		p.Post(cfg.GraphQLPath, h.Serve)
	})

	return otelhttp.NewHandler(r, cfg.ServiceName)
}
