package middleware

import (
	"net/http"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/observability"
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/transport"
	"go.uber.org/zap"
)

func Recovery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}

					log := observability.GetLogger(r.Context())
					log.Error("panic_recovered", zap.Any("error", rec), zap.Stack("stack"))

					transport.WriteError(
						w,
						http.StatusInternalServerError,
						"internal_error",
						"internal server error",
					)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
