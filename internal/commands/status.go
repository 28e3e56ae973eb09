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
	Register(&StatusCmd{})
}

// StatusCmd implements the status command: report the stored session and,
// when it is valid, whether the account still exists server-side.
type StatusCmd struct{}

func (c *StatusCmd) Name() string        { return "status" }
func (c *StatusCmd) Aliases() []string   { return []string{"whoami"} }
func (c *StatusCmd) Synopsis() string    { return "Show session state" }
func (c *StatusCmd) Usage() string       { return "taskman status [common flags]" }
func (c *StatusCmd) RequiresLogin() bool { return false }

func (c *StatusCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StatusCmd) Run(ctx context.Context, cfg *config.Config, store *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	if store.Token() == "" {
		fmt.Fprintln(out, "not logged in")
		return exitcode.Success
	}

	state := "expired"
	if store.IsLoggedIn() {
		state = "valid"
	}
	email := store.Email()
	if email == "" {
		email = "(unknown)"
	}
	fmt.Fprintf(out, "email:   %s\n", email)
	fmt.Fprintf(out, "session: %s\n", state)

	if state != "valid" || store.Email() == "" {
		return exitcode.Success
	}

	exists, err := svc.CheckUser(ctx, store.Email())
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
	account := "missing"
	if exists {
		account = "exists"
	}
	fmt.Fprintf(out, "account: %s\n", account)
	return exitcode.Success
}
