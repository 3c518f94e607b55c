package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS lets the dashboard call the API from its own origin with a bearer token.
func CORS(allowedOrigins []string, debug bool) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         600,
		Debug:          debug,
	})
	return c.Handler
}
