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
	Register(&DoneCmd{})
}

// DoneCmd implements the done command: toggle a task's completed state.
type DoneCmd struct{}

func (c *DoneCmd) Name() string        { return "done" }
func (c *DoneCmd) Aliases() []string   { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string    { return "Toggle a task's completed state" }
func (c *DoneCmd) Usage() string       { return "taskman done <ref>" }
func (c *DoneCmd) RequiresLogin() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, store *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
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

	completed := !task.Completed
	updated, err := svc.UpdateTask(ctx, task.ID, service.TaskPatch{Completed: &completed})
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", service.ErrorMessage(err, "could not update task"))
		return exitcode.BackendError
	}
	list.Replace(updated)

	if !cfg.Quiet {
		if updated.Completed {
			fmt.Fprintln(out, "ok completed")
		} else {
			fmt.Fprintln(out, "ok reopened")
		}
	}
	return exitcode.Success
}
