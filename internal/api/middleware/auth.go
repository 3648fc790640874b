package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// APIKeyAuth returns middleware requiring the X-API-Key header to
// match the configured key. An empty configured key disables auth
// (local development).
func APIKeyAuth(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			presented := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(presented), []byte(key)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid API key"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
