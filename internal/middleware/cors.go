package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/Likhith623/agentic-image-generation/internal/config"
)

// CORS builds the cross-origin middleware from the configured origin list.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
