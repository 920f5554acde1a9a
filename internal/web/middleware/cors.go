package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows browser clients (marketplaces, wallets) to fetch metadata
// cross-origin. The API is read-only, so only safe methods are allowed and
// credentials are never shared.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         600,
	})
	return c.Handler
}
