package wordpress

import (
	"context"
)

// API defines the interface for WordPress operations
type API interface {
	// CheckConnection probes the API root and classifies the outcome
	CheckConnection(ctx context.Context) (bool, error)

	// PostCount retrieves the total number of posts
	PostCount(ctx context.Context) (int, error)

	// GetPost retrieves a single post by id
	GetPost(ctx context.Context, id int) (*Post, error)

	// GetAllPosts retrieves every post in ascending page order
	GetAllPosts(ctx context.Context) ([]Post, error)

	// GetPosts retrieves up to amount posts, clamped to the true total
	GetPosts(ctx context.Context, amount int) ([]Post, error)

	// GetPostsByTags retrieves the posts carrying any of the named tags
	GetPostsByTags(ctx context.Context, tagNames []string) ([]Post, error)

	// CreatePost creates a new post, creating missing tags on the way
	CreatePost(ctx context.Context, post Post) (*Post, error)

	// DeletePost permanently deletes a post
	DeletePost(ctx context.Context, id int) error

	// TagNames resolves tag ids to names, order-preserving
	TagNames(ctx context.Context, ids []int) ([]string, error)

	// TagID resolves a tag name to its id
	TagID(ctx context.Context, name string, createIfMissing bool) (int, error)

	// TagSlug returns the slug of the named tag
	TagSlug(ctx context.Context, name string) (string, error)
}

// Directory provides the read-only site collections
type Directory interface {
	// Partners retrieves the partners collection
	Partners(ctx context.Context) ([]Partner, error)

	// Personnel retrieves the personnel collection
	Personnel(ctx context.Context) ([]Personnel, error)

	// Events retrieves the school-events collection
	Events(ctx context.Context) ([]Event, error)
}

// Calendar provides access to the Tribe Events calendar.
type Calendar interface {
	// CalendarEvents retrieves all calendar events
	CalendarEvents(ctx context.Context) ([]CalendarEvent, error)

	// CalendarEvent retrieves a single calendar event by id
	CalendarEvent(ctx context.Context, id int) (*CalendarEvent, error)

	// CreateCalendarEvent creates a new calendar event
	CreateCalendarEvent(ctx context.Context, event CalendarEvent) (*CalendarEvent, error)

	// DeleteCalendarEvent removes a calendar event
	DeleteCalendarEvent(ctx context.Context, id int) error
}
