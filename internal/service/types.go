package service

import (
	"errors"
	"fmt"
	"net/http"
)

// Task represents a single task item. The server owns id and createdAt.
type Task struct {
	ID          string `json:"id,omitempty"`
	UserEmail   string `json:"userEmail"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
	CompletedAt string `json:"completedAt,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// NewTask is the payload for creating a task.
type NewTask struct {
	UserEmail   string `json:"userEmail"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// TaskPatch is a partial task update. Nil fields are omitted from the
// request body, so the server only touches what the caller set.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// APIError is an HTTP failure from the Task Manager API, preserving the
// status code and the message extracted from the response body so callers
// can distinguish, e.g., "unknown user" (404) from other failures.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// ErrorMessage returns the server-provided message from err, or fallback
// when err carries none.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
