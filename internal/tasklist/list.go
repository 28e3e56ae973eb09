// Package tasklist owns the in-memory collection of the current user's
// tasks. The authoritative copy lives server-side; the collection changes
// only after the corresponding API call has resolved, so nothing is ever
// applied speculatively and nothing needs rolling back.
package tasklist

import (
	"errors"
	"strconv"
	"strings"

	"taskman/internal/service"
)

// ErrNotFound is returned when a reference matches no task.
var ErrNotFound = errors.New("task not found")

// ErrAmbiguous is returned when a title reference matches several tasks.
var ErrAmbiguous = errors.New("ambiguous task reference")

// List is an ordered collection of one user's tasks.
type List struct {
	tasks []service.Task
}

// New creates a List seeded with tasks, preserving their order.
func New(tasks []service.Task) *List {
	l := &List{}
	l.Set(tasks)
	return l
}

// Set replaces the collection, preserving order.
func (l *List) Set(tasks []service.Task) {
	l.tasks = make([]service.Task, len(tasks))
	copy(l.tasks, tasks)
}

// Tasks returns the collection in order.
func (l *List) Tasks() []service.Task {
	return l.tasks
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Prepend puts a newly created task at the front of the collection.
func (l *List) Prepend(t service.Task) {
	l.tasks = append([]service.Task{t}, l.tasks...)
}

// Replace swaps the entry with the same ID for the updated copy.
// Reports whether a matching entry existed.
func (l *List) Replace(t service.Task) bool {
	for i := range l.tasks {
		if l.tasks[i].ID == t.ID {
			l.tasks[i] = t
			return true
		}
	}
	return false
}

// Remove filters out the entry with the given ID.
// Reports whether a matching entry existed.
func (l *List) Remove(id string) bool {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Filtered returns the tasks whose title or description contains filter,
// case-insensitively. An empty filter returns the full collection
// unchanged in order. Pure projection; the collection is not modified.
func (l *List) Filtered(filter string) []service.Task {
	if filter == "" {
		return l.tasks
	}
	needle := strings.ToLower(filter)
	var result []service.Task
	for _, t := range l.tasks {
		if strings.Contains(strings.ToLower(t.Title), needle) ||
			strings.Contains(strings.ToLower(t.Description), needle) {
			result = append(result, t)
		}
	}
	return result
}

// Resolve maps a user-supplied reference to a task. A reference is either
// a 1-based position in the collection, an exact task ID, or a unique
// case-insensitive title match.
func (l *List) Resolve(ref string) (service.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return service.Task{}, ErrNotFound
	}

	if num, err := strconv.Atoi(ref); err == nil {
		if num < 1 || num > len(l.tasks) {
			return service.Task{}, ErrNotFound
		}
		return l.tasks[num-1], nil
	}

	for _, t := range l.tasks {
		if t.ID == ref {
			return t, nil
		}
	}

	refLower := strings.ToLower(ref)
	var matches []service.Task
	for _, t := range l.tasks {
		if strings.ToLower(strings.TrimSpace(t.Title)) == refLower {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return service.Task{}, ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return service.Task{}, ErrAmbiguous
	}
}
