package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/philly/posts-api/internal/platform/apperror"
	"github.com/philly/posts-api/internal/platform/eventbus"
	"github.com/philly/posts-api/internal/platform/events"
	"github.com/philly/posts-api/internal/platform/logger"
	"github.com/philly/posts-api/internal/platform/validator"
	"github.com/philly/posts-api/internal/posts/domain"
	"github.com/philly/posts-api/internal/posts/ports"
)

// Error definitions for service operations
var (
	ErrPostNotFound = apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodePostNotFound,
		"post not found",
		http.StatusNotFound,
	)

	ErrMissingBody = apperror.New(
		apperror.CodeInvalidRequest,
		apperror.BusinessCodeMissingBody,
		"Request body must be JSON",
		http.StatusBadRequest,
	)

	ErrMissingField = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeMissingField,
		"missing field",
		http.StatusBadRequest,
	)

	ErrInvalidSortField = apperror.New(
		apperror.CodeInvalidParameter,
		apperror.BusinessCodeInvalidSortField,
		"Invalid sort field. Allowed: 'title', 'content'.",
		http.StatusBadRequest,
	)

	ErrInvalidSortDirection = apperror.New(
		apperror.CodeInvalidParameter,
		apperror.BusinessCodeInvalidSortDirection,
		"Invalid sort direction. Allowed: 'asc', 'desc'.",
		http.StatusBadRequest,
	)
)

// PostsService handles post-related business logic
type PostsService struct {
	repo     ports.PostRepository
	eventBus *eventbus.Bus
	logger   logger.Logger
}

// NewPostsService creates a new posts service
func NewPostsService(
	repo ports.PostRepository,
	eventBus *eventbus.Bus,
	logger logger.Logger,
) *PostsService {
	return &PostsService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// ListPostsParams holds the raw sort and direction query values; nil means absent.
type ListPostsParams struct {
	Sort      *string
	Direction *string
}

// ListPosts returns every post, in insertion order or sorted on request.
func (s *PostsService) ListPosts(ctx context.Context, params ListPostsParams) ([]domain.Post, error) {
	order, err := parseSortOrder(params)
	if err != nil {
		return nil, err
	}

	posts, err := s.repo.List(ctx, ports.ListFilter{Order: order})
	if err != nil {
		s.logger.Error(ctx, "failed to list posts", "error", err)
		return nil, apperror.Internal(err, "failed to list posts")
	}
	return posts, nil
}

// parseSortOrder validates the direction whenever it is given, even without a sort field.
func parseSortOrder(params ListPostsParams) (*domain.SortOrder, error) {
	direction := domain.SortAsc
	if params.Direction != nil {
		d, err := domain.ParseSortDirection(*params.Direction)
		if err != nil {
			return nil, ErrInvalidSortDirection
		}
		direction = d
	}

	if params.Sort == nil {
		return nil, nil
	}
	field, err := domain.ParseSortField(*params.Sort)
	if err != nil {
		return nil, ErrInvalidSortField
	}
	return &domain.SortOrder{Field: field, Direction: direction}, nil
}

// SearchPostsParams holds optional substring filters
type SearchPostsParams struct {
	Title   *string
	Content *string
}

// SearchPosts returns posts whose fields contain every given query, ignoring case.
func (s *PostsService) SearchPosts(ctx context.Context, params SearchPostsParams) ([]domain.Post, error) {
	posts, err := s.repo.List(ctx, ports.ListFilter{
		Query: domain.SearchQuery{Title: params.Title, Content: params.Content},
	})
	if err != nil {
		s.logger.Error(ctx, "failed to search posts", "error", err)
		return nil, apperror.Internal(err, "failed to search posts")
	}
	return posts, nil
}

// CreatePostParams contains parameters for creating a new post
type CreatePostParams struct {
	Title   string
	Content string
}

// CreatePost validates and stores a new post
func (s *PostsService) CreatePost(ctx context.Context, params CreatePostParams) (domain.Post, error) {
	post, err := domain.NewPost(params.Title, params.Content)
	if err != nil {
		return domain.Post{}, s.translateError(ctx, err, 0)
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return domain.Post{}, s.translateError(ctx, err, 0)
	}

	s.logger.Debug(ctx, "post created", "post_id", created.ID)
	s.eventBus.Publish(ctx, eventbus.Event{
		Topic:   events.PostCreatedTopic,
		Payload: events.NewPostCreated(created.ID, created.Title),
	})

	return created, nil
}

// UpdatePostParams contains parameters for a partial update; nil fields are kept
type UpdatePostParams struct {
	Title   *string
	Content *string
}

// UpdatePost overwrites the fields present in params on the post with the given ID
func (s *PostsService) UpdatePost(ctx context.Context, id int, params UpdatePostParams) (domain.Post, error) {
	update := domain.PostUpdate{Title: params.Title, Content: params.Content}

	var changed []string
	post, err := s.repo.Update(ctx, id, func(p *domain.Post) error {
		if err := update.Validate(); err != nil {
			return err
		}
		changed = p.Apply(update)
		return nil
	})
	if err != nil {
		return domain.Post{}, s.translateError(ctx, err, id)
	}

	if len(changed) > 0 {
		s.eventBus.Publish(ctx, eventbus.Event{
			Topic:   events.PostUpdatedTopic,
			Payload: events.NewPostUpdated(post.ID, changed),
		})
	}

	return post, nil
}

// DeletePost removes the post with the given ID
func (s *PostsService) DeletePost(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.translateError(ctx, err, id)
	}

	s.eventBus.Publish(ctx, eventbus.Event{
		Topic:   events.PostDeletedTopic,
		Payload: events.NewPostDeleted(id),
	})
	return nil
}

// GetPost returns the post with the given ID
func (s *PostsService) GetPost(ctx context.Context, id int) (domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Post{}, s.translateError(ctx, err, id)
	}
	return post, nil
}

// FieldValidationError reports an invalid input field as a MissingField AppError
// naming the field and the reason in its details.
func FieldValidationError(fe *validator.FieldError) *apperror.AppError {
	return ErrMissingField.WithMessage("%s", fe.Error()).WithDetails(map[string]string{
		"field":  fe.Field,
		"reason": string(fe.Reason),
	})
}

// CheckStore verifies the repository answers; used by the readiness probe.
func (s *PostsService) CheckStore(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	s.logger.Debug(ctx, "store check passed", "post_count", count)
	return nil
}

// translateError maps domain and repository errors onto AppErrors.
// The not-found check runs before apply in Update, so a missing post wins
// over an invalid body.
func (s *PostsService) translateError(ctx context.Context, err error, id int) error {
	if fe, ok := validator.AsFieldError(err); ok {
		return FieldValidationError(fe)
	}
	if errors.Is(err, ports.ErrPostNotFound) {
		return ErrPostNotFound.WithMessage("Post with id %d not found", id)
	}
	s.logger.Error(ctx, "post repository failure", "error", err, "post_id", id)
	return apperror.Internal(err, "internal server error")
}
