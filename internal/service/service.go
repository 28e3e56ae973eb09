// Package service defines the backend-agnostic interface for Task Manager
// API operations. Commands never talk HTTP directly.
package service

import "context"

// Service defines the interface for auth, user and task operations.
// All Task Manager API calls go through this interface.
type Service interface {
	// Login authenticates by email and returns a bearer token.
	// An unknown user surfaces as an *APIError with status 404.
	// The token is not persisted here; that is the caller's job.
	Login(ctx context.Context, email string) (string, error)

	// CheckUser reports whether an account exists for the email.
	CheckUser(ctx context.Context, email string) (bool, error)

	// CreateUser registers a new account for the email.
	CreateUser(ctx context.Context, email string) error

	// Tasks returns all tasks belonging to the user, in API order.
	Tasks(ctx context.Context, email string) ([]Task, error)

	// CreateTask creates a task and returns the server copy
	// (id and createdAt are server-assigned).
	CreateTask(ctx context.Context, t NewTask) (Task, error)

	// UpdateTask applies a partial update and returns the server copy.
	UpdateTask(ctx context.Context, id string, patch TaskPatch) (Task, error)

	// DeleteTask deletes a task by ID.
	DeleteTask(ctx context.Context, id string) error
}
