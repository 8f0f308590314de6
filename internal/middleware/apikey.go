package middleware

import (
	"crypto/subtle"
	"net/http"
)

// APIKey guards the storefront routes with the shared X-Api-Key header.
// When no key is configured the routes are open (local development).
func APIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			sent := r.Header.Get("X-Api-Key")
			if subtle.ConstantTimeCompare([]byte(sent), []byte(key)) != 1 {
				http.Error(w, "Invalid API key", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
