// Package api defines the HTTP contract of the posts API: wire types, the
// ServerInterface handlers implement, and the chi routing that binds path
// and query parameters before calling them.
package api

import "time"

// Post is a post as returned by the API
type Post struct {
	Id      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreatePostRequest is the body of POST /posts
type CreatePostRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// UpdatePostRequest is the body of PUT /posts/{id}
type UpdatePostRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// Message is a plain confirmation response
type Message struct {
	Message string `json:"message"`
}

// Error is the body of every non-2xx response. Error holds the
// human-readable message.
type Error struct {
	Error        string `json:"error"`
	Code         string `json:"code,omitempty"`
	BusinessCode string `json:"business_code,omitempty"`
	Context      any    `json:"context,omitempty"`
}

// ListPostsParams defines parameters for ListPosts.
type ListPostsParams struct {
	// Sort is the field to order by: title or content
	Sort *string `form:"sort,omitempty" json:"sort,omitempty"`

	// Direction is asc (default) or desc
	Direction *string `form:"direction,omitempty" json:"direction,omitempty"`
}

// SearchPostsParams defines parameters for SearchPosts.
type SearchPostsParams struct {
	Title   *string `form:"title,omitempty" json:"title,omitempty"`
	Content *string `form:"content,omitempty" json:"content,omitempty"`
}

// HealthStatusStatus is the overall health verdict
type HealthStatusStatus string

const (
	Healthy   HealthStatusStatus = "healthy"
	Degraded  HealthStatusStatus = "degraded"
	Unhealthy HealthStatusStatus = "unhealthy"
)

// HealthCheckStatus is the state of a single dependency
type HealthCheckStatus string

const (
	Up   HealthCheckStatus = "up"
	Down HealthCheckStatus = "down"
)

// HealthChecks lists per-dependency results
type HealthChecks struct {
	Store *HealthCheckStatus `json:"store,omitempty"`
}

// HealthStatus is the body of the health endpoints
type HealthStatus struct {
	Status    HealthStatusStatus `json:"status"`
	Timestamp time.Time          `json:"timestamp"`
	Version   *string            `json:"version,omitempty"`
	Checks    *HealthChecks      `json:"checks,omitempty"`
}
