package middleware

import (
	"net/http"
	"slices"
)

var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:4001",
}

// Cors libera as origens informadas; sem origens usa as de desenvolvimento local
func Cors(origins ...string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = defaultAllowedOrigins
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if slices.Contains(origins, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, X-Requested-With")
				w.Header().Set("Access-Control-Max-Age", "86400") // Cache do CORS por 24 horas
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
