package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/service"
	"taskman/internal/session"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	description string
}

// SetDescription sets the description (for testing).
func (c *AddCmd) SetDescription(desc string) {
	c.description = desc
}

func (c *AddCmd) Name() string        { return "add" }
func (c *AddCmd) Aliases() []string   { return []string{"create"} }
func (c *AddCmd) Synopsis() string    { return "Create a task" }
func (c *AddCmd) Usage() string       { return "taskman add [--desc <text>] <title...>" }
func (c *AddCmd) RequiresLogin() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.description, "d", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, store *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	email := store.Email()
	if email == "" {
		fmt.Fprintf(errOut, "error: %s\n", session.LoginHint)
		return exitcode.AuthError
	}

	// The session email is merged into the submitted fields; the server
	// assigns id and createdAt.
	task, err := svc.CreateTask(ctx, service.NewTask{
		UserEmail:   email,
		Title:       title,
		Description: c.description,
	})
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", service.ErrorMessage(err, "could not create task"))
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "ok %s\n", task.ID)
	}
	return exitcode.Success
}
