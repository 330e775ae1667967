// Package api provides the page store REST API client.
package api

import (
	"errors"
	"net/http"
	"time"
)

// ListResponse wraps paginated API responses.
type ListResponse[T any] struct {
	Results    []T    `json:"results"`
	NextCursor string `json:"nextCursor,omitempty"`
}

// HasMore returns true if there are more results available.
func (p *ListResponse[T]) HasMore() bool {
	return p.NextCursor != ""
}

// Page is a page stored as shortcode text.
type Page struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"` // shortcode markup
	Version   int    `json:"version,omitempty"`
	UpdatedAt Time   `json:"updatedAt,omitempty"`
}

// Time is a wrapper around time.Time for custom JSON parsing.
type Time struct {
	time.Time
}

// UnmarshalJSON parses ISO 8601 dates.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)

	// Handle null or empty
	if s == "null" || s == `""` || s == "" {
		return nil
	}

	// Remove quotes if present
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// Try alternative format
		parsed, err = time.Parse("2006-01-02T15:04:05.000Z", s)
		if err != nil {
			return err
		}
	}

	t.Time = parsed
	return nil
}

// MarshalJSON formats time in ISO 8601 format.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// CreatePageRequest is the request body for creating a page.
type CreatePageRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePageRequest is the request body for updating a page.
type UpdatePageRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Version int    `json:"version"`
}

// Page store failures by status, matched through errors.Is on *ErrorResponse.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("version conflict")
)

// ErrorResponse represents an API error.
type ErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors,omitempty"`
}

func (e *ErrorResponse) Error() string {
	if len(e.Errors) > 0 {
		return e.Errors[0]
	}
	return e.Message
}

// Unwrap maps the status code to one of the sentinel errors.
func (e *ErrorResponse) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	}
	return nil
}

// IsNotFound reports whether err is a 404 from the page store.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
