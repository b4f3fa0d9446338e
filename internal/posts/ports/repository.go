package ports

import (
	"context"
	"errors"

	"github.com/philly/posts-api/internal/posts/domain"
)

// Repository errors - these are the canonical errors that repository
// implementations return.
var (
	// ErrPostNotFound is returned when no post has the requested ID
	ErrPostNotFound = errors.New("post not found")
)

// PostRepository defines the interface for post storage. Implementations
// must be safe for concurrent use and must hand out copies, never references
// to stored records.
type PostRepository interface {
	// List returns the posts matching filter. Without an Order the result
	// is in insertion order.
	List(ctx context.Context, filter ListFilter) ([]domain.Post, error)

	// FindByID retrieves a post by its ID
	FindByID(ctx context.Context, id int) (domain.Post, error)

	// Create assigns the next ID (max existing + 1, or 1 when empty),
	// appends the post and returns it. Assignment and append are atomic.
	Create(ctx context.Context, post domain.Post) (domain.Post, error)

	// Update runs apply against the stored post with the given ID and saves
	// the result unless apply returns an error. The read-modify-write is atomic.
	Update(ctx context.Context, id int, apply func(post *domain.Post) error) (domain.Post, error)

	// Delete removes a post
	Delete(ctx context.Context, id int) error

	// Count returns the number of stored posts
	Count(ctx context.Context) (int, error)
}

// ListFilter contains filtering and ordering options for listing posts
type ListFilter struct {
	// Query filters by substring; its zero value matches everything
	Query domain.SearchQuery

	// Order is nil for insertion order
	Order *domain.SortOrder
}
