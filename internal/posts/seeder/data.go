package seeder

import "github.com/philly/posts-api/internal/posts/domain"

// InitialPosts are loaded into an empty store at startup and receive ids 1 and 2.
var InitialPosts = []domain.Post{
	{Title: "First post", Content: "This is the first post."},
	{Title: "Second post", Content: "This is the second post."},
}
