package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mcoot/wordcapture/internal/api/apierr"
	"github.com/mcoot/wordcapture/internal/services/auth"
)

type contextKey string

const clientContextKey contextKey = "client"

// Auth creates API key middleware. When the auth service has no keys
// configured every request passes through.
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authService.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			key := extractKey(r)
			if key == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			client, err := authService.ValidateKey(key)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), clientContextKey, client)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractKey extracts the API key from the request
func extractKey(r *http.Request) string {
	// Check Authorization header first
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	// Fall back to the explicit header
	return r.Header.Get("X-API-Key")
}

// GetClient returns the authenticated client from the request context
func GetClient(ctx context.Context) *auth.Client {
	client, _ := ctx.Value(clientContextKey).(*auth.Client)
	return client
}
