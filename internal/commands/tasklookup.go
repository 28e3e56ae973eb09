package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"taskman/internal/exitcode"
	"taskman/internal/service"
	"taskman/internal/session"
	"taskman/internal/tasklist"
)

// fetchTasks loads the session user's tasks into a list controller.
// A missing session email denies the command the same way the guard does.
// On failure the error is printed and a non-zero exit code returned.
func fetchTasks(ctx context.Context, store *session.Store, svc service.Service, errOut io.Writer) (*tasklist.List, int) {
	email := store.Email()
	if email == "" {
		fmt.Fprintf(errOut, "error: %s\n", session.LoginHint)
		return nil, exitcode.AuthError
	}

	tasks, err := svc.Tasks(ctx, email)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", service.ErrorMessage(err, "could not load tasks"))
		return nil, exitcode.BackendError
	}
	return tasklist.New(tasks), exitcode.Success
}

// resolveTask maps a user-supplied reference (number, id or title) to a
// task, printing a user error when it matches nothing or several tasks.
func resolveTask(list *tasklist.List, ref string, errOut io.Writer) (service.Task, int) {
	task, err := list.Resolve(ref)
	if err != nil {
		if errors.Is(err, tasklist.ErrAmbiguous) {
			fmt.Fprintf(errOut, "error: ambiguous task reference: %s\n", ref)
		} else {
			fmt.Fprintf(errOut, "error: task not found: %s\n", ref)
		}
		return service.Task{}, exitcode.UserError
	}
	return task, exitcode.Success
}
