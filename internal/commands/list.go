package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/output"
	"taskman/internal/service"
	"taskman/internal/session"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command. Runs for `taskman` with no args too.
type ListCmd struct {
	filter string
}

// SetFilter sets the filter string (for testing).
func (c *ListCmd) SetFilter(filter string) {
	c.filter = filter
}

func (c *ListCmd) Name() string        { return "list" }
func (c *ListCmd) Aliases() []string   { return []string{"ls"} }
func (c *ListCmd) Synopsis() string    { return "List tasks" }
func (c *ListCmd) Usage() string       { return "taskman list [--filter <text>]" }
func (c *ListCmd) RequiresLogin() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.filter, "filter", "", "")
	fs.StringVar(&c.filter, "f", "", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, store *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	list, code := fetchTasks(ctx, store, svc, errOut)
	if code != exitcode.Success {
		return code
	}

	visible := list.Filtered(c.filter)
	if len(visible) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	for i, task := range visible {
		output.FormatTask(out, i+1, task)
	}
	return exitcode.Success
}
