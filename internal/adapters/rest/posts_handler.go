package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/philly/posts-api/internal/adapters/api"
	"github.com/philly/posts-api/internal/platform/validator"
	"github.com/philly/posts-api/internal/posts/application"
	"github.com/philly/posts-api/internal/posts/domain"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

// PostsHandler handles HTTP requests for posts
type PostsHandler struct {
	*BaseHandler
	service *application.PostsService
}

// NewPostsHandler creates a new posts handler
func NewPostsHandler(base *BaseHandler, service *application.PostsService) *PostsHandler {
	return &PostsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// ListPosts returns all posts, optionally sorted by title or content
func (h *PostsHandler) ListPosts(w http.ResponseWriter, r *http.Request, params api.ListPostsParams) {
	posts, err := h.service.ListPosts(r.Context(), application.ListPostsParams{
		Sort:      params.Sort,
		Direction: params.Direction,
	})
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, domainPostsToAPI(posts), http.StatusOK)
}

// CreatePost adds a post
func (h *PostsHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req api.CreatePostRequest
	if err := decodeObject(w, r, &req, false); err != nil {
		h.HandleError(w, r, err)
		return
	}

	params := application.CreatePostParams{}
	if req.Title != nil {
		params.Title = *req.Title
	}
	if req.Content != nil {
		params.Content = *req.Content
	}

	post, err := h.service.CreatePost(r.Context(), params)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, domainPostToAPI(post), http.StatusCreated)
}

// SearchPosts returns the posts matching the title and content substrings
func (h *PostsHandler) SearchPosts(w http.ResponseWriter, r *http.Request, params api.SearchPostsParams) {
	posts, err := h.service.SearchPosts(r.Context(), application.SearchPostsParams{
		Title:   params.Title,
		Content: params.Content,
	})
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, domainPostsToAPI(posts), http.StatusOK)
}

// UpdatePost overwrites the fields present in the body. An empty body
// changes nothing and returns the post as stored. An unknown id is a 404
// whatever the body holds.
func (h *PostsHandler) UpdatePost(w http.ResponseWriter, r *http.Request, id int) {
	if _, err := h.service.GetPost(r.Context(), id); err != nil {
		h.HandleError(w, r, err)
		return
	}

	var req api.UpdatePostRequest
	if err := decodeObject(w, r, &req, true); err != nil {
		h.HandleError(w, r, err)
		return
	}

	post, err := h.service.UpdatePost(r.Context(), id, application.UpdatePostParams{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, domainPostToAPI(post), http.StatusOK)
}

// DeletePost removes a post
func (h *PostsHandler) DeletePost(w http.ResponseWriter, r *http.Request, id int) {
	if err := h.service.DeletePost(r.Context(), id); err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, api.Message{
		Message: fmt.Sprintf("Post with id %d has been deleted successfully.", id),
	}, http.StatusOK)
}

// decodeObject decodes the request body into dst. The body must be a JSON
// object; unless allowEmpty is set it must also have at least one member.
// With allowEmpty, a missing body or null leaves dst untouched. A member of
// the wrong type is reported against its field.
func decodeObject(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) error {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return application.ErrMissingBody
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return emptyBody(allowEmpty)
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return application.ErrMissingBody
	}
	if len(members) == 0 {
		return emptyBody(allowEmpty)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return application.FieldValidationError(validator.WrongType(typeErr.Field))
		}
		return application.ErrMissingBody
	}
	return nil
}

func emptyBody(allowEmpty bool) error {
	if allowEmpty {
		return nil
	}
	return application.ErrMissingBody
}

// Helper functions

func domainPostToAPI(post domain.Post) api.Post {
	return api.Post{
		Id:      post.ID,
		Title:   post.Title,
		Content: post.Content,
	}
}

func domainPostsToAPI(posts []domain.Post) []api.Post {
	out := make([]api.Post, len(posts))
	for i, p := range posts {
		out[i] = domainPostToAPI(p)
	}
	return out
}
