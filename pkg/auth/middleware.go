package auth

import (
	"encoding/json"
	"net/http"
	"strings"
)

// RequireAdmin is middleware guarding admin-only endpoints. It verifies the
// Authorization: Bearer token and rejects with 401 JSON on any failure.
func RequireAdmin(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			if err := VerifyToken(token, secret); err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_token"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
