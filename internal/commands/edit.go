package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/service"
	"taskman/internal/session"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command: a partial update of title and/or
// description. Untouched fields are not sent.
type EditCmd struct {
	title    string
	desc     string
	titleSet bool
	descSet  bool
}

// SetTitle sets the new title (for testing).
func (c *EditCmd) SetTitle(title string) {
	c.title = title
	c.titleSet = true
}

// SetDescription sets the new description (for testing).
func (c *EditCmd) SetDescription(desc string) {
	c.desc = desc
	c.descSet = true
}

func (c *EditCmd) Name() string        { return "edit" }
func (c *EditCmd) Aliases() []string   { return nil }
func (c *EditCmd) Synopsis() string    { return "Edit a task" }
func (c *EditCmd) Usage() string       { return "taskman edit [--title <text>] [--desc <text>] <ref>" }
func (c *EditCmd) RequiresLogin() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.Func("title", "", func(s string) error {
		c.title = s
		c.titleSet = true
		return nil
	})
	fs.Func("desc", "", func(s string) error {
		c.desc = s
		c.descSet = true
		return nil
	})
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, store *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task reference required")
		return exitcode.UserError
	}
	if !c.titleSet && !c.descSet {
		fmt.Fprintln(errOut, "error: nothing to update (use --title or --desc)")
		return exitcode.UserError
	}

	list, code := fetchTasks(ctx, store, svc, errOut)
	if code != exitcode.Success {
		return code
	}
	task, code := resolveTask(list, args[0], errOut)
	if code != exitcode.Success {
		return code
	}

	var patch service.TaskPatch
	if c.titleSet {
		patch.Title = &c.title
	}
	if c.descSet {
		patch.Description = &c.desc
	}

	updated, err := svc.UpdateTask(ctx, task.ID, patch)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", service.ErrorMessage(err, "could not update task"))
		return exitcode.BackendError
	}
	// Server confirmed; mirror the change locally.
	list.Replace(updated)

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
