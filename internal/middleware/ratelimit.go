package middleware

import (
	"net/http"
	"time"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/transport"
	"github.com/go-chi/httprate"
)

// RateLimit limits requests per client IP within window.
func RateLimit(requests int, window time.Duration) func(next http.Handler) http.Handler {
	if window <= 0 {
		window = time.Minute
	}

	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			transport.WriteError(w, http.StatusTooManyRequests, "rate_limited", "too many requests")
		}),
	)
}
