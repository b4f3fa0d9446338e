package rest

import (
	"github.com/philly/posts-api/internal/adapters/api"
)

// Server combines all handlers to implement api.ServerInterface
type Server struct {
	*PostsHandler
	*HealthHandler
}

// NewServer creates a new server that implements api.ServerInterface
func NewServer(
	postsHandler *PostsHandler,
	healthHandler *HealthHandler,
) api.ServerInterface {
	return &Server{
		PostsHandler:  postsHandler,
		HealthHandler: healthHandler,
	}
}

// Ensure Server implements api.ServerInterface
var _ api.ServerInterface = (*Server)(nil)
