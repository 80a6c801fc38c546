package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/transport"
	"github.com/golang-jwt/jwt/v5"
)

// JWT returns middleware that validates HS256 JWTs using the given shared
// secret. Empty issuer or audience skips that check.
func JWT(secret []byte, iss, aud string) func(http.Handler) http.Handler {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if iss != "" {
		opts = append(opts, jwt.WithIssuer(iss))
	}
	if aud != "" {
		opts = append(opts, jwt.WithAudience(aud))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				transport.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}

			tok := strings.TrimPrefix(h, "Bearer ")

			parsed, err := jwt.Parse(tok, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return secret, nil
			}, opts...)

			if err != nil || !parsed.Valid {
				transport.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid token")
				return
			}

			sub, err := parsed.Claims.GetSubject()
			if err != nil || sub == "" {
				transport.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid token claims")
				return
			}

			next.ServeHTTP(w, r.WithContext(InjectUserID(r.Context(), sub)))
		})
	}
}
