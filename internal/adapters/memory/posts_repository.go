package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/philly/posts-api/internal/posts/domain"
	"github.com/philly/posts-api/internal/posts/ports"
)

// PostsRepository keeps posts in insertion order in process memory.
// A single RWMutex guards the slice.
type PostsRepository struct {
	mu    sync.RWMutex
	posts []domain.Post
}

// NewPostsRepository creates an empty repository
func NewPostsRepository() *PostsRepository {
	return &PostsRepository{}
}

// List returns copies of the matching posts, sorted when filter.Order is set.
func (r *PostsRepository) List(ctx context.Context, filter ports.ListFilter) ([]domain.Post, error) {
	r.mu.RLock()
	out := make([]domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if filter.Query.Matches(p) {
			out = append(out, p)
		}
	}
	r.mu.RUnlock()

	// out is private to this call, sorting it never touches stored order
	if filter.Order != nil {
		domain.SortPosts(out, *filter.Order)
	}
	return out, nil
}

// FindByID retrieves a post by its ID
func (r *PostsRepository) FindByID(ctx context.Context, id int) (domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Post{}, ports.ErrPostNotFound
	}
	return r.posts[i], nil
}

// Create assigns the next ID and appends the post under the write lock.
func (r *PostsRepository) Create(ctx context.Context, post domain.Post) (domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post.ID = r.nextID()
	r.posts = append(r.posts, post)
	return post, nil
}

// Update applies fn to a copy of the stored post and writes it back on success.
func (r *PostsRepository) Update(ctx context.Context, id int, apply func(post *domain.Post) error) (domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Post{}, ports.ErrPostNotFound
	}

	post := r.posts[i]
	if err := apply(&post); err != nil {
		return domain.Post{}, err
	}
	// IDs are owned by the repository
	post.ID = id
	r.posts[i] = post
	return post, nil
}

// Delete removes a post, keeping the order of the rest
func (r *PostsRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ports.ErrPostNotFound
	}
	r.posts = slices.Delete(r.posts, i, i+1)
	return nil
}

// Count returns the number of stored posts
func (r *PostsRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.posts), nil
}

// indexOf must be called with r.mu held.
func (r *PostsRepository) indexOf(id int) int {
	return slices.IndexFunc(r.posts, func(p domain.Post) bool { return p.ID == id })
}

// nextID must be called with r.mu held for writing.
func (r *PostsRepository) nextID() int {
	maxID := 0
	for _, p := range r.posts {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

var _ ports.PostRepository = (*PostsRepository)(nil)
