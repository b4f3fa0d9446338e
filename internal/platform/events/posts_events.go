package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/philly/posts-api/internal/platform/eventbus"
)

// Event topics for posts
const (
	PostCreatedTopic eventbus.Topic = "posts.created"
	PostUpdatedTopic eventbus.Topic = "posts.updated"
	PostDeletedTopic eventbus.Topic = "posts.deleted"
)

// PostCreatedEvent is published when a new post is added to the store
type PostCreatedEvent struct {
	EventID    uuid.UUID
	PostID     int
	Title      string
	OccurredAt time.Time
}

// PostUpdatedEvent is published when a post is updated.
// ChangedFields lists the fields the update overwrote, in input order.
type PostUpdatedEvent struct {
	EventID       uuid.UUID
	PostID        int
	ChangedFields []string
	OccurredAt    time.Time
}

// PostDeletedEvent is published when a post is removed from the store
type PostDeletedEvent struct {
	EventID    uuid.UUID
	PostID     int
	OccurredAt time.Time
}

// NewPostCreated stamps a created event with a fresh id and the current time.
func NewPostCreated(postID int, title string) PostCreatedEvent {
	return PostCreatedEvent{EventID: uuid.New(), PostID: postID, Title: title, OccurredAt: time.Now().UTC()}
}

// NewPostUpdated stamps an updated event with a fresh id and the current time.
func NewPostUpdated(postID int, changed []string) PostUpdatedEvent {
	return PostUpdatedEvent{EventID: uuid.New(), PostID: postID, ChangedFields: changed, OccurredAt: time.Now().UTC()}
}

// NewPostDeleted stamps a deleted event with a fresh id and the current time.
func NewPostDeleted(postID int) PostDeletedEvent {
	return PostDeletedEvent{EventID: uuid.New(), PostID: postID, OccurredAt: time.Now().UTC()}
}
