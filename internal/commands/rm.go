package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/prompt"
	"taskman/internal/service"
	"taskman/internal/session"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command. Deletion happens only after an explicit
// confirmation, unless --yes is given.
type RmCmd struct {
	yes bool
}

// SetYes skips the confirmation prompt (for testing and scripts).
func (c *RmCmd) SetYes(yes bool) {
	c.yes = yes
}

func (c *RmCmd) Name() string        { return "rm" }
func (c *RmCmd) Aliases() []string   { return []string{"delete"} }
func (c *RmCmd) Synopsis() string    { return "Delete a task" }
func (c *RmCmd) Usage() string       { return "taskman rm [--yes] <ref>" }
func (c *RmCmd) RequiresLogin() bool { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.yes, "yes", false, "")
	fs.BoolVar(&c.yes, "y", false, "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, store *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task reference required")
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

	if !c.yes {
		q := fmt.Sprintf("Delete task %q?", task.Title)
		confirmed, err := prompt.New(in, errOut).Confirm(q)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		if !confirmed {
			if !cfg.Quiet {
				fmt.Fprintln(out, "cancelled")
			}
			return exitcode.Success
		}
	}

	if err := svc.DeleteTask(ctx, task.ID); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", service.ErrorMessage(err, "could not delete task"))
		return exitcode.BackendError
	}
	list.Remove(task.ID)

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
