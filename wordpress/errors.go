package wordpress

import (
	"fmt"
)

// Server-reported error codes the client classifies.
const (
	// CodeInvalidPostID is returned by WordPress for a GET on a post id
	// that does not exist.
	CodeInvalidPostID = "rest_post_invalid_id"
	// CodeIncorrectPassword is returned when the password part of the
	// credentials is wrong.
	CodeIncorrectPassword = "incorrect_password"
	// CodeInvalidUsername is returned when the username does not exist.
	CodeInvalidUsername = "invalid_username"
)

// APIError represents a non-success response from the WordPress REST API.
type APIError struct {
	StatusCode int
	Code       string // server-reported error code, e.g. "rest_post_invalid_id"
	Message    string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("wordpress API error: status %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("wordpress API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404 || e.Code == CodeInvalidPostID
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403 ||
		e.Code == CodeIncorrectPassword || e.Code == CodeInvalidUsername
}

// PostNotFoundError indicates the requested post id does not exist.
type PostNotFoundError struct {
	ID int
}

func (e *PostNotFoundError) Error() string {
	return fmt.Sprintf("post not found: %d", e.ID)
}

// TagNotFoundError indicates a tag name had no match and creation was not
// requested.
type TagNotFoundError struct {
	Name string
}

func (e *TagNotFoundError) Error() string {
	return fmt.Sprintf("tag not found: %s", e.Name)
}

// AuthenticationError indicates the server rejected the configured
// credentials. Reason carries the server-reported code verbatim,
// one of CodeIncorrectPassword or CodeInvalidUsername.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

// InvalidURLError indicates the configured server address cannot be
// resolved or reached at all.
type InvalidURLError struct {
	URL string
	Err error
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("not a valid URL: %s", e.URL)
}

func (e *InvalidURLError) Unwrap() error {
	return e.Err
}

// InvalidArgumentError indicates malformed caller input. It is surfaced
// before any request is issued and is never retried.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Reason)
}
