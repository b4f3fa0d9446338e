package domain

import (
	"errors"
	"slices"
	"strings"

	"github.com/philly/posts-api/internal/platform/validator"
)

// Post is a stored post record. ID is assigned by the repository.
type Post struct {
	ID      int
	Title   string
	Content string
}

// Field names as they appear on the wire
const (
	FieldTitle   = "title"
	FieldContent = "content"
)

// NewPost validates title and content (in that order) and returns an
// unsaved post.
func NewPost(title, content string) (Post, error) {
	if err := validator.Required(FieldTitle, &title); err != nil {
		return Post{}, err
	}
	if err := validator.Required(FieldContent, &content); err != nil {
		return Post{}, err
	}
	return Post{Title: title, Content: content}, nil
}

// PostUpdate carries the fields of a partial update. Nil means "keep".
type PostUpdate struct {
	Title   *string
	Content *string
}

// Validate rejects fields that are present but empty.
func (u PostUpdate) Validate() error {
	if err := validator.NotEmpty(FieldTitle, u.Title); err != nil {
		return err
	}
	return validator.NotEmpty(FieldContent, u.Content)
}

// Apply overwrites the fields present in u and returns their names.
func (p *Post) Apply(u PostUpdate) []string {
	var changed []string
	if u.Title != nil {
		p.Title = *u.Title
		changed = append(changed, FieldTitle)
	}
	if u.Content != nil {
		p.Content = *u.Content
		changed = append(changed, FieldContent)
	}
	return changed
}

// Sorting and search errors
var (
	ErrInvalidSortField     = errors.New("invalid sort field")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
)

// SortField is one of the fields a listing can be ordered by
type SortField string

const (
	SortByTitle   SortField = FieldTitle
	SortByContent SortField = FieldContent
)

var sortAccessors = map[SortField]func(Post) string{
	SortByTitle:   func(p Post) string { return p.Title },
	SortByContent: func(p Post) string { return p.Content },
}

// IsValid checks if the field is one of the sortable fields
func (f SortField) IsValid() bool {
	_, ok := sortAccessors[f]
	return ok
}

// ParseSortField maps a query value onto a SortField.
func ParseSortField(s string) (SortField, error) {
	f := SortField(s)
	if !f.IsValid() {
		return "", ErrInvalidSortField
	}
	return f, nil
}

// SortDirection is asc or desc
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// IsValid checks if the direction is asc or desc
func (d SortDirection) IsValid() bool {
	return d == SortAsc || d == SortDesc
}

// ParseSortDirection maps a query value onto a SortDirection.
func ParseSortDirection(s string) (SortDirection, error) {
	d := SortDirection(s)
	if !d.IsValid() {
		return "", ErrInvalidSortDirection
	}
	return d, nil
}

// SortOrder is a validated (field, direction) pair
type SortOrder struct {
	Field     SortField
	Direction SortDirection
}

// SortPosts orders posts in place by the case-insensitive value of the
// chosen field. Posts with equal keys keep their relative order in both
// directions.
func SortPosts(posts []Post, order SortOrder) {
	key := sortAccessors[order.Field]
	if key == nil {
		return
	}
	slices.SortStableFunc(posts, func(a, b Post) int {
		c := strings.Compare(strings.ToLower(key(a)), strings.ToLower(key(b)))
		if order.Direction == SortDesc {
			return -c
		}
		return c
	})
}

// SearchQuery holds optional substring filters. A nil filter matches every post.
type SearchQuery struct {
	Title   *string
	Content *string
}

// Matches reports whether p satisfies every filter set on q, ignoring case.
func (q SearchQuery) Matches(p Post) bool {
	return containsFold(p.Title, q.Title) && containsFold(p.Content, q.Content)
}

func containsFold(value string, needle *string) bool {
	if needle == nil {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(*needle))
}
