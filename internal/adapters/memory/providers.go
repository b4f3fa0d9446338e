package memory

import (
	"github.com/google/wire"

	"github.com/philly/posts-api/internal/posts/ports"
)

// ProviderSet is the wire provider set for the in-memory repositories
var ProviderSet = wire.NewSet(
	NewPostsRepository,
	wire.Bind(new(ports.PostRepository), new(*PostsRepository)),
)
