package seeder

import (
	"context"
	"fmt"

	"github.com/philly/posts-api/internal/platform/seeder"
	"github.com/philly/posts-api/internal/posts/ports"
)

// PostsSeeder loads InitialPosts into an empty repository
type PostsSeeder struct {
	repo ports.PostRepository
}

// NewPostsSeeder creates a seeder for the posts repository
func NewPostsSeeder(repo ports.PostRepository) *PostsSeeder {
	return &PostsSeeder{repo: repo}
}

func (s *PostsSeeder) Name() string { return "posts" }

// Seed does nothing when the repository already holds posts.
func (s *PostsSeeder) Seed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count posts: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, post := range InitialPosts {
		if _, err := s.repo.Create(ctx, post); err != nil {
			return fmt.Errorf("failed to seed post %q: %w", post.Title, err)
		}
	}
	return nil
}

var _ seeder.Seeder = (*PostsSeeder)(nil)
