// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"taskman/internal/service"
)

// FakeToken is the bearer token the fake backend hands out on login.
const FakeToken = "fake-token"

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu    sync.RWMutex
	users map[string]bool
	tasks []service.Task

	// Token is returned by Login for known users. Defaults to FakeToken.
	Token string

	// Error injection for testing
	LoginErr      error
	CheckUserErr  error
	CreateUserErr error
	TasksErr      error
	CreateTaskErr error
	UpdateTaskErr error
	DeleteTaskErr error
}

// NewFakeService creates a new FakeService with no users or tasks.
func NewFakeService() *FakeService {
	return &FakeService{
		users: make(map[string]bool),
		Token: FakeToken,
	}
}

// AddUser registers a user in the fake backend.
func (f *FakeService) AddUser(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[email] = true
}

// AddTask seeds a task with the given id.
func (f *FakeService) AddTask(id, email, title, description string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{
		ID:          id,
		UserEmail:   email,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	})
}

// AllTasks returns a copy of every stored task, in insertion order.
func (f *FakeService) AllTasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result
}

// Login implements service.Service.
func (f *FakeService) Login(ctx context.Context, email string) (string, error) {
	if f.LoginErr != nil {
		return "", f.LoginErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.users[email] {
		return "", &service.APIError{StatusCode: http.StatusNotFound, Message: "User not found"}
	}
	return f.Token, nil
}

// CheckUser implements service.Service.
func (f *FakeService) CheckUser(ctx context.Context, email string) (bool, error) {
	if f.CheckUserErr != nil {
		return false, f.CheckUserErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.users[email], nil
}

// CreateUser implements service.Service.
func (f *FakeService) CreateUser(ctx context.Context, email string) error {
	if f.CreateUserErr != nil {
		return f.CreateUserErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.users[email] {
		return &service.APIError{StatusCode: http.StatusConflict, Message: "User already exists"}
	}
	f.users[email] = true
	return nil
}

// Tasks implements service.Service.
func (f *FakeService) Tasks(ctx context.Context, email string) ([]service.Task, error) {
	if f.TasksErr != nil {
		return nil, f.TasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	var result []service.Task
	for _, t := range f.tasks {
		if t.UserEmail == email {
			result = append(result, t)
		}
	}
	return result, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, nt service.NewTask) (service.Task, error) {
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	task := service.Task{
		ID:          uuid.NewString(),
		UserEmail:   nt.UserEmail,
		Title:       nt.Title,
		Description: nt.Description,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	f.tasks = append(f.tasks, task)
	return task, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id string, patch service.TaskPatch) (service.Task, error) {
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID != id {
			continue
		}
		if patch.Title != nil {
			f.tasks[i].Title = *patch.Title
		}
		if patch.Description != nil {
			f.tasks[i].Description = *patch.Description
		}
		if patch.Completed != nil {
			f.tasks[i].Completed = *patch.Completed
			if *patch.Completed {
				f.tasks[i].CompletedAt = time.Now().UTC().Format(time.RFC3339)
			} else {
				f.tasks[i].CompletedAt = ""
			}
		}
		return f.tasks[i], nil
	}
	return service.Task{}, &service.APIError{StatusCode: http.StatusNotFound, Message: "Task not found"}
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id string) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return &service.APIError{StatusCode: http.StatusNotFound, Message: "Task not found"}
}
