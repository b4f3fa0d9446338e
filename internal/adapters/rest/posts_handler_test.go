package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philly/posts-api/internal/adapters/api"
	"github.com/philly/posts-api/internal/adapters/memory"
	"github.com/philly/posts-api/internal/adapters/rest"
	"github.com/philly/posts-api/internal/adapters/rest/middleware"
	"github.com/philly/posts-api/internal/platform/eventbus"
	"github.com/philly/posts-api/internal/posts/application"
	"github.com/philly/posts-api/internal/posts/seeder"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	repo := memory.NewPostsRepository()
	require.NoError(t, seeder.NewPostsSeeder(repo).Seed(context.Background()))

	log := &mockLogger{}
	service := application.NewPostsService(repo, eventbus.NewBus(log), log)
	base := rest.NewBaseHandler(log)
	server := rest.NewServer(
		rest.NewPostsHandler(base, service),
		rest.NewHealthHandler(base, "test", service),
	)

	r := chi.NewRouter()
	return api.HandlerWithOptions(server, api.ChiServerOptions{
		BaseURL:          "/api",
		BaseRouter:       r,
		ErrorHandlerFunc: middleware.ParamErrorHandler,
	})
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodePosts(t *testing.T, rec *httptest.ResponseRecorder) []api.Post {
	t.Helper()
	var posts []api.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	return posts
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.Error {
	t.Helper()
	var body api.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func postIDs(posts []api.Post) []int {
	out := make([]int, len(posts))
	for i, p := range posts {
		out[i] = p.Id
	}
	return out
}

func TestListPosts(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/posts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, []api.Post{
		{Id: 1, Title: "First post", Content: "This is the first post."},
		{Id: 2, Title: "Second post", Content: "This is the second post."},
	}, decodePosts(t, rec))
}

func TestListPosts_Sorting(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		status  int
		wantIDs []int
		wantErr string
	}{
		{name: "title desc", query: "?sort=title&direction=desc", status: http.StatusOK, wantIDs: []int{2, 1}},
		{name: "content asc by default", query: "?sort=content", status: http.StatusOK, wantIDs: []int{1, 2}},
		{name: "bogus field", query: "?sort=bogus", status: http.StatusBadRequest, wantErr: "Invalid sort field. Allowed: 'title', 'content'."},
		{name: "bogus direction", query: "?sort=title&direction=up", status: http.StatusBadRequest, wantErr: "Invalid sort direction. Allowed: 'asc', 'desc'."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRouter(t)

			rec := do(t, h, http.MethodGet, "/api/posts"+tt.query, "")
			require.Equal(t, tt.status, rec.Code, rec.Body.String())

			if tt.wantErr != "" {
				body := decodeError(t, rec)
				assert.Equal(t, tt.wantErr, body.Error)
				assert.Equal(t, "INVALID_PARAMETER", body.Code)
				return
			}
			assert.Equal(t, tt.wantIDs, postIDs(decodePosts(t, rec)))
		})
	}
}

func TestCreatePost(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/posts", `{"title":"A","content":"B"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created api.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, api.Post{Id: 3, Title: "A", Content: "B"}, created)

	list := decodePosts(t, do(t, h, http.MethodGet, "/api/posts", ""))
	assert.Equal(t, []int{1, 2, 3}, postIDs(list))
	assert.Equal(t, created, list[2])
}

func TestCreatePost_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  string
		wantCode string
	}{
		{name: "no body", body: "", wantErr: "Request body must be JSON", wantCode: "INVALID_REQUEST"},
		{name: "not json", body: "title=A", wantErr: "Request body must be JSON", wantCode: "INVALID_REQUEST"},
		{name: "empty object", body: `{}`, wantErr: "Request body must be JSON", wantCode: "INVALID_REQUEST"},
		{name: "array", body: `[{"title":"A"}]`, wantErr: "Request body must be JSON", wantCode: "INVALID_REQUEST"},
		{name: "empty title", body: `{"title":""}`, wantErr: "Field 'title' is required", wantCode: "VALIDATION_FAILED"},
		{name: "missing content", body: `{"title":"A"}`, wantErr: "Field 'content' is required", wantCode: "VALIDATION_FAILED"},
		{name: "missing title", body: `{"content":"B"}`, wantErr: "Field 'title' is required", wantCode: "VALIDATION_FAILED"},
		{name: "title not a string", body: `{"title":5,"content":"x"}`, wantErr: "Field 'title' must be a string", wantCode: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRouter(t)

			rec := do(t, h, http.MethodPost, "/api/posts", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			body := decodeError(t, rec)
			assert.Equal(t, tt.wantErr, body.Error)
			assert.Equal(t, tt.wantCode, body.Code)

			list := decodePosts(t, do(t, h, http.MethodGet, "/api/posts", ""))
			assert.Equal(t, []int{1, 2}, postIDs(list))
		})
	}
}

func TestDeletePost(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodDelete, "/api/posts/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var msg api.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.Equal(t, "Post with id 1 has been deleted successfully.", msg.Message)

	list := decodePosts(t, do(t, h, http.MethodGet, "/api/posts", ""))
	assert.Equal(t, []int{2}, postIDs(list))

	rec = do(t, h, http.MethodDelete, "/api/posts/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Post with id 1 not found", body.Error)
	assert.Equal(t, "POST_NOT_FOUND", body.BusinessCode)
}

func TestUpdatePost(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPut, "/api/posts/2", `{"title":"New"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated api.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, api.Post{Id: 2, Title: "New", Content: "This is the second post."}, updated)

	list := decodePosts(t, do(t, h, http.MethodGet, "/api/posts", ""))
	assert.Equal(t, updated, list[1])
}

func TestUpdatePost_Cases(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		body    string
		status  int
		wantErr string
	}{
		{name: "not found", target: "/api/posts/99", body: `{"title":"New"}`, status: http.StatusNotFound, wantErr: "Post with id 99 not found"},
		{name: "empty title", target: "/api/posts/1", body: `{"title":""}`, status: http.StatusBadRequest, wantErr: "Field 'title' must not be empty"},
		{name: "broken json", target: "/api/posts/1", body: `{"title":`, status: http.StatusBadRequest, wantErr: "Request body must be JSON"},
		{name: "not found beats broken json", target: "/api/posts/99", body: `{"title":`, status: http.StatusNotFound, wantErr: "Post with id 99 not found"},
		{name: "not found beats non-object body", target: "/api/posts/99", body: `[1]`, status: http.StatusNotFound, wantErr: "Post with id 99 not found"},
		{name: "content not a string", target: "/api/posts/1", body: `{"content":["x"]}`, status: http.StatusBadRequest, wantErr: "Field 'content' must be a string"},
		{name: "non-integer id", target: "/api/posts/abc", body: `{"title":"New"}`, status: http.StatusBadRequest, wantErr: "Invalid format for parameter id"},
		{name: "empty body keeps post", target: "/api/posts/1", body: "", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRouter(t)
			before := do(t, h, http.MethodGet, "/api/posts", "").Body.String()

			rec := do(t, h, http.MethodPut, tt.target, tt.body)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())

			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, decodeError(t, rec).Error)
			}
			after := do(t, h, http.MethodGet, "/api/posts", "").Body.String()
			assert.Equal(t, before, after)
		})
	}
}

func TestSearchPosts(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantIDs []int
	}{
		{name: "title first", query: "?title=first", wantIDs: []int{1}},
		{name: "title upper case", query: "?title=SECOND", wantIDs: []int{2}},
		{name: "content", query: "?content=first%20post", wantIDs: []int{1}},
		{name: "no filters", query: "", wantIDs: []int{1, 2}},
		{name: "no match", query: "?title=first&content=second", wantIDs: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRouter(t)

			rec := do(t, h, http.MethodGet, "/api/posts/search"+tt.query, "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantIDs, postIDs(decodePosts(t, rec)))
		})
	}
}

type stubChecker struct{ err error }

func (s stubChecker) CheckStore(ctx context.Context) error { return s.err }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		checker    rest.HealthChecker
		wantStatus int
		wantHealth api.HealthStatusStatus
	}{
		{name: "store up", checker: stubChecker{}, wantStatus: http.StatusOK, wantHealth: api.Healthy},
		{name: "store down", checker: stubChecker{err: errors.New("down")}, wantStatus: http.StatusServiceUnavailable, wantHealth: api.Unhealthy},
		{name: "no checker", checker: nil, wantStatus: http.StatusOK, wantHealth: api.Degraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := rest.NewHealthHandler(rest.NewBaseHandler(&mockLogger{}), "1.2.3", tt.checker)

			rec := httptest.NewRecorder()
			handler.GetReadiness(rec, httptest.NewRequest(http.MethodGet, "/api/health/ready", nil))
			require.Equal(t, tt.wantStatus, rec.Code)

			var status api.HealthStatus
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
			assert.Equal(t, tt.wantHealth, status.Status)
			require.NotNil(t, status.Version)
			assert.Equal(t, "1.2.3", *status.Version)
		})
	}

	t.Run("liveness", func(t *testing.T) {
		handler := rest.NewHealthHandler(rest.NewBaseHandler(&mockLogger{}), "1.2.3", nil)

		rec := httptest.NewRecorder()
		handler.GetLiveness(rec, httptest.NewRequest(http.MethodGet, "/api/health/live", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var status api.HealthStatus
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		assert.Equal(t, api.Healthy, status.Status)
	})
}
