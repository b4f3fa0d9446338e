package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORSConfig lists the origins allowed to call the API; "*" allows any.
type CORSConfig struct {
	AllowedOrigins []string
}

// CORSMiddleware answers preflight requests and sets the CORS response headers
type CORSMiddleware struct {
	handler func(http.Handler) http.Handler
}

// NewCORSMiddleware builds the CORS middleware
func NewCORSMiddleware(cfg CORSConfig) *CORSMiddleware {
	return &CORSMiddleware{
		handler: cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{
				http.MethodGet,
				http.MethodPost,
				http.MethodPut,
				http.MethodDelete,
				http.MethodOptions,
			},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}),
	}
}

// Middleware wraps next with CORS handling
func (m *CORSMiddleware) Middleware(next http.Handler) http.Handler {
	return m.handler(next)
}
