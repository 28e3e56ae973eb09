// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"taskman/internal/config"
	"taskman/internal/service"
	"taskman/internal/session"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// RequiresLogin reports whether the command is guarded: the dispatcher
	// denies it when no valid session exists. Commands like help, version,
	// login and logout are not guarded.
	RequiresLogin() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg and store are always provided; svc is the API backend.
	// in is the interactive input stream for prompts.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, store *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int
}
