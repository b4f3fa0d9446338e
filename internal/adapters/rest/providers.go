package rest

import (
	"github.com/google/wire"

	"github.com/philly/posts-api/internal/posts/application"
)

// ProviderSet is the wire provider set for REST handlers
var ProviderSet = wire.NewSet(
	NewBaseHandler,
	NewPostsHandler,
	NewHealthHandler,
	wire.Bind(new(HealthChecker), new(*application.PostsService)),
	NewServer, // Combined server that implements api.ServerInterface
)
