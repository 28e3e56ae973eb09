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
	Register(&RegisterCmd{})
}

// RegisterCmd implements the register command: create an account for an
// email that has none, then log in with it.
type RegisterCmd struct{}

func (c *RegisterCmd) Name() string        { return "register" }
func (c *RegisterCmd) Aliases() []string   { return nil }
func (c *RegisterCmd) Synopsis() string    { return "Create an account and log in" }
func (c *RegisterCmd) Usage() string       { return "taskman register <email>" }
func (c *RegisterCmd) RequiresLogin() bool { return false }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RegisterCmd) Run(ctx context.Context, cfg *config.Config, store *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		fmt.Fprintln(errOut, "error: email required")
		return exitcode.UserError
	}
	email := strings.TrimSpace(args[0])

	exists, err := svc.CheckUser(ctx, email)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
	if exists {
		fmt.Fprintf(errOut, "error: already registered: %s (run: taskman login %s)\n", email, email)
		return exitcode.UserError
	}

	if err := svc.CreateUser(ctx, email); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", service.ErrorMessage(err, registerErrMsg))
		return exitcode.AuthError
	}

	token, err := svc.Login(ctx, email)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", service.ErrorMessage(err, relogErrMsg))
		return exitcode.AuthError
	}
	return persistSession(cfg, store, token, email, out, errOut)
}
