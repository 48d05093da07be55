package wordpress

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// PostStatus represents the publication state of a post
type PostStatus string

const (
	// StatusDraft represents an unpublished draft
	StatusDraft PostStatus = "draft"
	// StatusPublish represents a published post
	StatusPublish PostStatus = "publish"
	// StatusPending represents a post awaiting review
	StatusPending PostStatus = "pending"
	// StatusPrivate represents a privately published post
	StatusPrivate PostStatus = "private"
	// StatusFuture represents a scheduled post
	StatusFuture PostStatus = "future"
	// StatusTrash represents a trashed post
	StatusTrash PostStatus = "trash"
)

// Valid checks whether the status is one WordPress accepts
func (s PostStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublish, StatusPending, StatusPrivate, StatusFuture, StatusTrash:
		return true
	}
	return false
}

// Post is the client-side representation of a WordPress post. Title and
// Content hold the server-rendered HTML. Tags always holds human-readable
// tag names, never numeric ids; the client resolves between the two at
// the API boundary.
type Post struct {
	ID      int
	Title   string
	Content string
	Status  PostStatus
	Tags    []string
}

// validate performs the shape checks applied before a create request.
func (p Post) validate() error {
	if p.Title == "" && p.Content == "" {
		return &InvalidArgumentError{Reason: "post must have a title or content"}
	}
	if p.Status != "" && !p.Status.Valid() {
		return &InvalidArgumentError{Reason: fmt.Sprintf("unknown post status %q", p.Status)}
	}
	return nil
}

// Tag represents a WordPress tag
type Tag struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// PageStats carries the pagination totals reported by a list endpoint.
type PageStats struct {
	Total      int
	TotalPages int
}

// Partner is a read-only projection of the partners collection
type Partner struct {
	ID      int
	Name    string
	Link    string
	MediaID int
}

// Personnel is a read-only projection of the personnel collection
type Personnel struct {
	ID   int
	Name string
	Link string
}

// Event is a read-only projection of the school-events collection
type Event struct {
	ID    int
	Title string
	Link  string
}

// CalendarEvent represents an event from the Tribe Events calendar
type CalendarEvent struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartDate   EventTime `json:"start_date"`
	EndDate     EventTime `json:"end_date"`
	AllDay      bool      `json:"all_day,omitempty"`
	URL         string    `json:"url,omitempty"`
}

// EventTime wraps time.Time for the "2006-01-02 15:04:05" layout the
// Tribe Events API uses instead of RFC 3339.
type EventTime struct {
	time.Time
}

const eventTimeLayout = "2006-01-02 15:04:05"

// UnmarshalJSON implements json.Unmarshaler
func (t *EventTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(eventTimeLayout, s)
	if err != nil {
		return fmt.Errorf("invalid event time %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler
func (t EventTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(t.Format(eventTimeLayout))
}

// renderedText is the {"rendered": "..."} envelope WordPress wraps
// rendered fields in.
type renderedText struct {
	Rendered string `json:"rendered"`
}

// wirePost is a post as the server returns it: rendered envelopes and
// numeric tag ids.
type wirePost struct {
	ID      int          `json:"id"`
	Title   renderedText `json:"title"`
	Content renderedText `json:"content"`
	Status  PostStatus   `json:"status"`
	Tags    []int        `json:"tags"`
}

// apiPost is a post as it is sent to the server on create. It exists only
// at the write boundary.
type apiPost struct {
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Status  PostStatus `json:"status,omitempty"`
	Tags    []int      `json:"tags"`
}

type wirePartner struct {
	ID            int          `json:"id"`
	Title         renderedText `json:"title"`
	Link          string       `json:"link"`
	FeaturedMedia int          `json:"featured_media"`
}

type wirePersonnel struct {
	ID    int          `json:"id"`
	Title renderedText `json:"title"`
	Link  string       `json:"link"`
}

type wireEvent struct {
	ID    int          `json:"id"`
	Title renderedText `json:"title"`
	Link  string       `json:"link"`
}

// wireEvents is the envelope of the Tribe Events list endpoint.
type wireEvents struct {
	Events []CalendarEvent `json:"events"`
	Total  int             `json:"total"`
}

// wireError is the error envelope every /wp-json route uses.
type wireError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Status int `json:"status"`
	} `json:"data"`
}

// wireTag is the payload for tag creation.
type wireTag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// slugify derives a URL-safe slug from a tag name, matching what
// WordPress would generate for simple names.
func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(slug, " ", "-")
}
