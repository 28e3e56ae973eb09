package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/prompt"
	"taskman/internal/service"
	"taskman/internal/session"
)

// Generic fallbacks when the server response carries no message.
const (
	loginErrMsg    = "login error"
	registerErrMsg = "error registering user"
	relogErrMsg    = "error logging in after registration"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command: authenticate by email, persist
// the session, and offer registration when the account does not exist.
type LoginCmd struct {
	yes bool
}

// SetYes auto-confirms the registration prompt (for testing and scripts).
func (c *LoginCmd) SetYes(yes bool) {
	c.yes = yes
}

func (c *LoginCmd) Name() string        { return "login" }
func (c *LoginCmd) Aliases() []string   { return nil }
func (c *LoginCmd) Synopsis() string    { return "Log in by email" }
func (c *LoginCmd) Usage() string       { return "taskman login [--yes] <email>" }
func (c *LoginCmd) RequiresLogin() bool { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.yes, "yes", false, "")
	fs.BoolVar(&c.yes, "y", false, "")
}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, store *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: email required")
		return exitcode.UserError
	}
	email := strings.TrimSpace(args[0])
	if email == "" {
		fmt.Fprintln(errOut, "error: email required")
		return exitcode.UserError
	}

	token, err := svc.Login(ctx, email)
	if err == nil {
		return persistSession(cfg, store, token, email, out, errOut)
	}

	// 404 means the account does not exist; offer registration instead of
	// surfacing an error.
	if !service.IsNotFound(err) {
		fmt.Fprintf(errOut, "error: %s\n", service.ErrorMessage(err, loginErrMsg))
		return exitcode.AuthError
	}

	confirmed := c.yes
	if !confirmed {
		q := fmt.Sprintf("No account found for %s. Create one?", email)
		confirmed, err = prompt.New(in, errOut).Confirm(q)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	}
	if !confirmed {
		if !cfg.Quiet {
			fmt.Fprintln(out, "cancelled")
		}
		return exitcode.Success
	}

	if err := svc.CreateUser(ctx, email); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", service.ErrorMessage(err, registerErrMsg))
		return exitcode.AuthError
	}

	// The follow-up login is only issued once the registration resolved.
	token, err = svc.Login(ctx, email)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", service.ErrorMessage(err, relogErrMsg))
		return exitcode.AuthError
	}
	return persistSession(cfg, store, token, email, out, errOut)
}

// persistSession stores the token and email and prints the success marker.
func persistSession(cfg *config.Config, store *session.Store, token, email string, out, errOut io.Writer) int {
	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create config directory: %v\n", err)
		return exitcode.AuthError
	}
	if err := store.SaveToken(token, email); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	}
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
