package middleware

import (
	"net/http"

	"vente-backend/internal/config"

	"github.com/rs/cors"
)

// NewCORS builds the CORS layer the dashboard front-end talks through.
// Method and header lists left empty in config fall back to what the
// dashboard actually sends.
func NewCORS(cfg *config.Config) func(http.Handler) http.Handler {
	methods := cfg.Server.CorsAllowedMethods
	if len(methods) == 0 {
		methods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	}
	headers := cfg.Server.CorsAllowedHeaders
	if len(headers) == 0 {
		headers = []string{"Content-Type", "Authorization"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CorsAllowedOrigins,
		AllowedMethods:   methods,
		AllowedHeaders:   headers,
		AllowCredentials: true,
		MaxAge:           300,
	})

	return c.Handler
}
