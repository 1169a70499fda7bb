package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/Lixing-Zhang/foodstand-pos/internal/config"
)

// APIKeyHeader carries the cashier terminal key
const APIKeyHeader = "api_key"

// APIKeyAuth rejects requests without a configured cashier key.
// A missing key is 401, an unknown key is 403.
func APIKeyAuth(cfg config.AuthConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get(APIKeyHeader)

			if apiKey == "" {
				deny(w, http.StatusUnauthorized, "API key required")
				return
			}

			if !knownKey(cfg.APIKeys, apiKey) {
				deny(w, http.StatusForbidden, "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func knownKey(keys []string, key string) bool {
	valid := false
	for _, k := range keys {
		if subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1 {
			valid = true
		}
	}
	return valid
}

func deny(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
